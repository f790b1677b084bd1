package schedule

import (
	"testing"

	"aztv-panel/internal/models"
)

func item(name string) models.Item {
	return models.Item{StartTime: "08:00", EndTime: "09:00", Name: name}
}

func boardWith(days ...models.Day) *Board {
	return &Board{Days: days}
}

func names(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func sameNames(got []models.Item, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Name != want[i] {
			return false
		}
	}
	return true
}

func TestAddOrUpdateItem_DayUniqueness(t *testing.T) {
	b := New()

	// Inserting for the same date twice must append, never duplicate the day
	b.AddOrUpdateItem("2024-01-08", item("Morning News"), nil)
	b.AddOrUpdateItem("2024-01-09", item("Film"), nil)
	b.AddOrUpdateItem("2024-01-08", item("Weather"), nil)
	b.AddOrUpdateItem("2024-01-08", item("Talk Show"), nil)

	if len(b.Days) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(b.Days))
	}

	seen := map[string]bool{}
	for _, d := range b.Days {
		if seen[d.Date] {
			t.Errorf("Duplicate day for date %s", d.Date)
		}
		seen[d.Date] = true
	}

	if !sameNames(b.Days[0].Items, "Morning News", "Weather", "Talk Show") {
		t.Errorf("Items not appended in order: %v", names(b.Days[0].Items))
	}
}

func TestAddOrUpdateItem_NewDayDerivesTitle(t *testing.T) {
	b := New()
	b.AddOrUpdateItem("2024-01-08", item("News"), nil) // a Monday

	if b.Days[0].Title != "Bazar ertəsi" {
		t.Errorf("Expected derived title %q, got %q", "Bazar ertəsi", b.Days[0].Title)
	}
}

func TestAddOrUpdateItem_EditSameDayKeepsPosition(t *testing.T) {
	b := boardWith(models.Day{
		Date:  "2024-01-08",
		Title: "Bazar ertəsi",
		Items: []models.Item{item("A"), item("B"), item("C")},
	})

	b.AddOrUpdateItem("2024-01-08", item("B2"), &Coordinate{Day: 0, Item: 1})

	if !sameNames(b.Days[0].Items, "A", "B2", "C") {
		t.Errorf("In-place edit lost position: %v", names(b.Days[0].Items))
	}
}

func TestAddOrUpdateItem_MoveToOtherDay(t *testing.T) {
	b := boardWith(
		models.Day{Date: "2024-01-08", Items: []models.Item{item("Solo")}},
		models.Day{Date: "2024-01-09", Items: []models.Item{item("X")}},
	)

	// Re-dating the only item of a day must prune that day and append
	// to the target day
	b.AddOrUpdateItem("2024-01-09", item("Solo"), &Coordinate{Day: 0, Item: 0})

	if len(b.Days) != 1 {
		t.Fatalf("Emptied day not pruned, have %d days", len(b.Days))
	}
	if !sameNames(b.Days[0].Items, "X", "Solo") {
		t.Errorf("Moved item not appended: %v", names(b.Days[0].Items))
	}
}

func TestAddOrUpdateItem_MoveCreatesTargetDay(t *testing.T) {
	b := boardWith(models.Day{
		Date:  "2024-01-08",
		Items: []models.Item{item("A"), item("B")},
	})

	b.AddOrUpdateItem("2024-01-10", item("B"), &Coordinate{Day: 0, Item: 1})

	if len(b.Days) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(b.Days))
	}
	if b.Days[1].Date != "2024-01-10" || b.Days[1].Title != "Çərşənbə" {
		t.Errorf("New target day wrong: %+v", b.Days[1])
	}
}

func TestDeleteItem(t *testing.T) {
	t.Run("prunes emptied day", func(t *testing.T) {
		b := boardWith(
			models.Day{Date: "2024-01-08", Items: []models.Item{item("Only")}},
			models.Day{Date: "2024-01-09", Items: []models.Item{item("Keep")}},
		)
		b.DeleteItem(Coordinate{Day: 0, Item: 0})

		if len(b.Days) != 1 || b.Days[0].Date != "2024-01-09" {
			t.Errorf("Day not pruned: %+v", b.Days)
		}
	})

	t.Run("keeps day with remaining items", func(t *testing.T) {
		b := boardWith(models.Day{
			Date:  "2024-01-08",
			Items: []models.Item{item("A"), item("B")},
		})
		b.DeleteItem(Coordinate{Day: 0, Item: 0})

		if len(b.Days) != 1 || !sameNames(b.Days[0].Items, "B") {
			t.Errorf("Unexpected state after delete: %+v", b.Days)
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		b := boardWith(models.Day{Date: "2024-01-08", Items: []models.Item{item("A")}})
		b.DeleteItem(Coordinate{Day: 5, Item: 0})
		b.DeleteItem(Coordinate{Day: 0, Item: 9})
		b.DeleteItem(Coordinate{Day: -1, Item: -1})

		if len(b.Days) != 1 || len(b.Days[0].Items) != 1 {
			t.Errorf("No-op delete mutated board: %+v", b.Days)
		}
	})
}

func TestMoveItem(t *testing.T) {
	fresh := func() *Board {
		return boardWith(models.Day{
			Date:  "2024-01-08",
			Items: []models.Item{item("A"), item("B"), item("C"), item("D")},
		})
	}

	tests := []struct {
		name string
		from int
		to   int
		want []string
	}{
		// The moved item lands at its drop slot (final index to)
		{"forward 0->2", 0, 2, []string{"B", "C", "A", "D"}},
		{"forward 0->3", 0, 3, []string{"B", "C", "D", "A"}},
		{"backward 3->1", 3, 1, []string{"A", "D", "B", "C"}},
		{"backward 2->0", 2, 0, []string{"C", "A", "B", "D"}},
		{"same slot", 1, 1, []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fresh()
			err := b.MoveItem(Coordinate{Day: 0, Item: tt.from}, Coordinate{Day: 0, Item: tt.to})
			if err != nil {
				t.Fatalf("MoveItem returned error: %v", err)
			}
			if !sameNames(b.Days[0].Items, tt.want...) {
				t.Errorf("Got %v, want %v", names(b.Days[0].Items), tt.want)
			}
		})
	}
}

func TestMoveItem_CrossDayRejected(t *testing.T) {
	b := boardWith(
		models.Day{Date: "2024-01-08", Items: []models.Item{item("A"), item("B")}},
		models.Day{Date: "2024-01-09", Items: []models.Item{item("X"), item("Y")}},
	)

	err := b.MoveItem(Coordinate{Day: 0, Item: 0}, Coordinate{Day: 1, Item: 1})
	if err != ErrCrossDayMove {
		t.Fatalf("Expected ErrCrossDayMove, got %v", err)
	}
	if !sameNames(b.Days[0].Items, "A", "B") || !sameNames(b.Days[1].Items, "X", "Y") {
		t.Errorf("Cross-day move mutated the board: %+v", b.Days)
	}
}

func TestMoveItem_OutOfRangeNoOp(t *testing.T) {
	b := boardWith(models.Day{Date: "2024-01-08", Items: []models.Item{item("A"), item("B")}})

	if err := b.MoveItem(Coordinate{Day: 0, Item: 5}, Coordinate{Day: 0, Item: 0}); err != nil {
		t.Errorf("Out-of-range source should be silent, got %v", err)
	}
	if err := b.MoveItem(Coordinate{Day: 0, Item: 0}, Coordinate{Day: 0, Item: 7}); err != nil {
		t.Errorf("Out-of-range target should be silent, got %v", err)
	}
	if !sameNames(b.Days[0].Items, "A", "B") {
		t.Errorf("No-op move mutated items: %v", names(b.Days[0].Items))
	}
}

func TestRenameDay(t *testing.T) {
	t.Run("re-dates and re-derives title", func(t *testing.T) {
		b := boardWith(models.Day{
			Date:  "2024-01-08",
			Title: "Bazar ertəsi",
			Items: []models.Item{item("A")},
		})
		b.RenameDay(0, "2024-01-12") // a Friday

		if b.Days[0].Date != "2024-01-12" || b.Days[0].Title != "Cümə" {
			t.Errorf("Rename wrong: %+v", b.Days[0])
		}
	})

	t.Run("collision merges into existing day", func(t *testing.T) {
		b := boardWith(
			models.Day{Date: "2024-01-08", Items: []models.Item{item("A"), item("B")}},
			models.Day{Date: "2024-01-09", Items: []models.Item{item("X")}},
		)
		b.RenameDay(1, "2024-01-08")

		if len(b.Days) != 1 {
			t.Fatalf("Expected merged single day, got %d", len(b.Days))
		}
		// Survivor keeps its order, renamed day's items appended
		if !sameNames(b.Days[0].Items, "A", "B", "X") {
			t.Errorf("Merge order wrong: %v", names(b.Days[0].Items))
		}
	})

	t.Run("out of range and empty date are no-ops", func(t *testing.T) {
		b := boardWith(models.Day{Date: "2024-01-08", Items: []models.Item{item("A")}})
		b.RenameDay(3, "2024-01-09")
		b.RenameDay(0, "")

		if b.Days[0].Date != "2024-01-08" {
			t.Errorf("No-op rename mutated board: %+v", b.Days)
		}
	})
}
