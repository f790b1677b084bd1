// Package editor holds the panel's application state and drives the
// gesture → mutate → project → save cycle against the gateway.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aztv-panel/internal/channels"
	"aztv-panel/internal/gateway"
	"aztv-panel/internal/models"
	"aztv-panel/internal/schedule"
)

// Notifier receives the transient toast feedback every operation ends
// with. Failures never propagate past the editor; they all land here.
type Notifier interface {
	Toast(msg string, isError bool)
}

// Gateway is the slice of the sync client the editor needs.
type Gateway interface {
	Load(ctx context.Context, channelID int) (*schedule.Board, string, error)
	Save(ctx context.Context, channelID int, channelName string, b *schedule.Board) error
}

// Editor replaces the original panel's pile of page globals with one
// explicit state struct: the active channel, its board and the pending
// edit coordinate all live here, so the whole editing model can be
// exercised without any UI harness.
//
// Mutations are optimistic: local state is mutated first and stays
// authoritative even when the save behind it fails; the failure is only
// reported. Each save submits whatever the board looks like at that
// instant, with no queue or in-flight gate, so overlapping saves are
// last-write-wins.
type Editor struct {
	board     *schedule.Board
	channelID int
	directory channels.Directory
	editing   *schedule.Coordinate
	gw        Gateway
	notify    Notifier
}

func New(gw Gateway, dir channels.Directory, notify Notifier) *Editor {
	return &Editor{
		board:     schedule.New(),
		channelID: 1,
		directory: dir,
		gw:        gw,
		notify:    notify,
	}
}

// ChannelID returns the active channel.
func (e *Editor) ChannelID() int { return e.channelID }

// View projects the current board for rendering. Coordinates inside the
// view are only valid until the next mutation.
func (e *Editor) View(sortByStart bool) []schedule.DayView {
	return e.board.Project(sortByStart)
}

// Refresh reloads the active channel's schedule from the remote store,
// replacing the in-memory board wholesale. On failure the current board
// is kept; a new gesture is the only retry.
func (e *Editor) Refresh(ctx context.Context) {
	board, warn, err := e.gw.Load(ctx, e.channelID)
	if err != nil {
		e.toastError(err)
		return
	}
	e.board = board
	e.editing = nil
	if warn != "" {
		e.notify.Toast(warn, true)
	}
}

// SwitchChannel discards the in-memory board and loads the schedule of
// the newly selected channel. A pending save for the old channel is not
// cancelled.
func (e *Editor) SwitchChannel(ctx context.Context, id int) {
	e.channelID = id
	e.board = schedule.New()
	e.editing = nil
	e.Refresh(ctx)
}

// BeginEdit marks the item the program form was opened for.
func (e *Editor) BeginEdit(c schedule.Coordinate) { e.editing = &c }

// ClearEdit resets the form back to insert mode.
func (e *Editor) ClearEdit() { e.editing = nil }

// SaveProgram validates the form, applies the add-or-update mutation
// and submits the whole schedule.
func (e *Editor) SaveProgram(ctx context.Context, date string, item models.Item) {
	if date == "" {
		e.notify.Toast("Tarix seçin", true)
		return
	}
	if strings.TrimSpace(item.Name) == "" {
		e.notify.Toast("Proqram adı yazın", true)
		return
	}

	updating := e.editing != nil
	e.board.AddOrUpdateItem(date, item, e.editing)
	e.editing = nil

	if e.save(ctx) {
		if updating {
			e.notify.Toast("Proqram yeniləndi", false)
		} else {
			e.notify.Toast("Proqram əlavə edildi", false)
		}
	}
}

// DeleteProgram removes one item (pruning its day if emptied) and
// submits the schedule.
func (e *Editor) DeleteProgram(ctx context.Context, c schedule.Coordinate) {
	e.board.DeleteItem(c)
	if e.save(ctx) {
		e.notify.Toast("Proqram silindi", false)
	}
}

// Reorder applies a drag-and-drop move. Drops on another day are
// rejected with a warning and nothing is saved.
func (e *Editor) Reorder(ctx context.Context, from, to schedule.Coordinate) {
	if err := e.board.MoveItem(from, to); err != nil {
		if errors.Is(err, schedule.ErrCrossDayMove) {
			e.notify.Toast("Sıralama yalnız eyni gün daxilində mümkündür", true)
		}
		return
	}
	if e.save(ctx) {
		e.notify.Toast("Sıralama dəyişdirildi və saxlanıldı", false)
	}
}

// ChangeDayDate re-dates one day (merging into an existing day with the
// same date) and submits the schedule. The same date is a no-op.
func (e *Editor) ChangeDayDate(ctx context.Context, day int, newDate string) {
	if newDate == "" || day < 0 || day >= len(e.board.Days) {
		return
	}
	if e.board.Days[day].Date == newDate {
		return
	}
	e.board.RenameDay(day, newDate)
	if e.save(ctx) {
		e.notify.Toast(fmt.Sprintf("Tarix dəyişdirildi: %s", schedule.FormatDate(newDate)), false)
	}
}

// save submits the full board for the active channel. The local board
// is kept as-is whatever the outcome; only the toast differs.
func (e *Editor) save(ctx context.Context) bool {
	name := e.directory.Name(e.channelID)
	if err := e.gw.Save(ctx, e.channelID, name, e.board); err != nil {
		if errors.Is(err, gateway.ErrNothingToSave) {
			e.notify.Toast("Saxlamaq üçün etibarlı proqram yoxdur", true)
			return false
		}
		e.toastError(err)
		return false
	}
	return true
}

func (e *Editor) toastError(err error) {
	if errors.Is(err, gateway.ErrAuthRequired) {
		e.notify.Toast("Giriş tələb olunur", true)
		return
	}
	e.notify.Toast("Xəta: "+err.Error(), true)
}
