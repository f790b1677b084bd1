package schedule

import (
	"sort"

	"aztv-panel/internal/models"
)

// ItemView is one renderable item together with the coordinate that
// addresses it in the current board. Projections are recomputed from
// scratch on every render, so a coordinate taken from a view is exactly
// as fresh as the view itself.
type ItemView struct {
	models.Item
	Coord Coordinate
}

// DayView is one renderable day in display order.
type DayView struct {
	Date          string
	Title         string
	FormattedDate string
	Items         []ItemView
}

// Project derives the display ordering without touching canonical
// storage order: days ascend by date (ISO dates compare fine as
// strings, empty dates sort first), items keep their stored broadcast
// order unless sortByStart asks for a start-time view. The sort is a
// view-level option only; the board itself is never re-sorted, since
// stored order is what MoveItem operates on and what gets persisted.
func (b *Board) Project(sortByStart bool) []DayView {
	order := make([]int, len(b.Days))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return b.Days[order[i]].Date < b.Days[order[j]].Date
	})

	views := make([]DayView, 0, len(order))
	for _, di := range order {
		day := b.Days[di]
		title := day.Title
		if title == "" {
			title = DayName(day.Date)
		}
		items := make([]ItemView, 0, len(day.Items))
		for ii, it := range day.Items {
			items = append(items, ItemView{Item: it, Coord: Coordinate{Day: di, Item: ii}})
		}
		if sortByStart {
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].StartTime < items[j].StartTime
			})
		}
		views = append(views, DayView{
			Date:          day.Date,
			Title:         title,
			FormattedDate: FormatDate(day.Date),
			Items:         items,
		})
	}
	return views
}
