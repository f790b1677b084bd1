// Package schedule owns the in-memory program board of one channel and
// every structural mutation the panel can apply to it. The remote store
// has no granular update endpoint, so the board is the single source of
// truth and is re-submitted wholesale after each mutation.
package schedule

import (
	"errors"

	"aztv-panel/internal/models"
)

// Coordinate addresses one item as a (day index, item index) pair
// against the current board. It is only valid until the next structural
// mutation; callers must re-resolve coordinates on every render.
type Coordinate struct {
	Day  int
	Item int
}

// ErrCrossDayMove is returned when a drag ends on a different day.
// Reordering is same-day only; the board is left untouched.
var ErrCrossDayMove = errors.New("reordering across days is not allowed")

// Board is the full schedule of one channel.
type Board struct {
	Days []models.Day
}

// New returns an empty board.
func New() *Board { return &Board{} }

// FromDays wraps days loaded from the remote store.
func FromDays(days []models.Day) *Board { return &Board{Days: days} }

func (b *Board) dayIndex(date string) int {
	for i, d := range b.Days {
		if d.Date == date {
			return i
		}
	}
	return -1
}

func (b *Board) valid(c Coordinate) bool {
	return c.Day >= 0 && c.Day < len(b.Days) &&
		c.Item >= 0 && c.Item < len(b.Days[c.Day].Items)
}

// removeAt deletes one item and prunes the day when it was the last one.
// A day with zero items must never survive a mutation.
func (b *Board) removeAt(c Coordinate) {
	items := b.Days[c.Day].Items
	b.Days[c.Day].Items = append(items[:c.Item], items[c.Item+1:]...)
	if len(b.Days[c.Day].Items) == 0 {
		b.Days = append(b.Days[:c.Day], b.Days[c.Day+1:]...)
	}
}

// addToDay appends the item to the day holding date, creating the day
// with a derived weekday title when no day has that date yet. This is
// what keeps dates unique across the board.
func (b *Board) addToDay(date string, item models.Item) {
	if i := b.dayIndex(date); i >= 0 {
		b.Days[i].Items = append(b.Days[i].Items, item)
		return
	}
	b.Days = append(b.Days, models.Day{
		Date:  date,
		Title: DayName(date),
		Items: []models.Item{item},
	})
}

// AddOrUpdateItem stores item under date. When editing addresses an
// existing item the behavior depends on whether the date changed: the
// same date replaces the item in place (keeping its position), a
// different date moves it to the target day, pruning the old day if
// that emptied it. Without editing this is a plain insert.
func (b *Board) AddOrUpdateItem(date string, item models.Item, editing *Coordinate) {
	if editing != nil && b.valid(*editing) {
		if b.Days[editing.Day].Date == date {
			b.Days[editing.Day].Items[editing.Item] = item
			return
		}
		b.removeAt(*editing)
	}
	b.addToDay(date, item)
}

// DeleteItem removes the addressed item and prunes its day when it was
// the last one. Out-of-range coordinates are a silent no-op.
func (b *Board) DeleteItem(c Coordinate) {
	if !b.valid(c) {
		return
	}
	b.removeAt(c)
}

// MoveItem reorders one item within its day: the item at from is
// removed and re-inserted so it lands at final index to.Item, matching
// the drop slot of the drag gesture. A drop on another day returns
// ErrCrossDayMove without changing anything; out-of-range indexes are
// a no-op.
func (b *Board) MoveItem(from, to Coordinate) error {
	if from.Day != to.Day {
		return ErrCrossDayMove
	}
	if !b.valid(from) {
		return nil
	}
	items := b.Days[from.Day].Items
	if to.Item < 0 || to.Item >= len(items) {
		return nil
	}
	if from.Item == to.Item {
		return nil
	}
	moved := items[from.Item]
	items = append(items[:from.Item], items[from.Item+1:]...)
	items = append(items[:to.Item], append([]models.Item{moved}, items[to.Item:]...)...)
	b.Days[from.Day].Items = items
	return nil
}

// RenameDay changes a day's date and re-derives its weekday title.
// When another day already holds the new date the two are merged: the
// existing day keeps its position and order, the renamed day's items
// are appended to it and the renamed day disappears.
func (b *Board) RenameDay(day int, newDate string) {
	if day < 0 || day >= len(b.Days) || newDate == "" {
		return
	}
	if other := b.dayIndex(newDate); other >= 0 && other != day {
		b.Days[other].Items = append(b.Days[other].Items, b.Days[day].Items...)
		b.Days = append(b.Days[:day], b.Days[day+1:]...)
		return
	}
	b.Days[day].Date = newDate
	b.Days[day].Title = DayName(newDate)
}
