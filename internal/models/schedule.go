package models

// Item is a single scheduled program inside a broadcast day.
// Times are wall-clock "HH:MM" strings; Description is null on the wire
// when the program has none.
type Item struct {
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Day groups the items broadcast on one calendar date. Date is an ISO
// "YYYY-MM-DD" string and is unique within a schedule. Items keep their
// stored broadcast order; display sorting is the projector's job.
type Day struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// ListRequest is the body of POST /api/list.
type ListRequest struct {
	ChannelID int `json:"channelId"`
}

// Channel wraps one channel's full program list for the create endpoint.
type Channel struct {
	Name     string `json:"name"`
	Programs []Day  `json:"programs"`
}

// CreateRequest is the whole-document replace payload for POST /api/create.
// The admin API has no partial update; every save carries the complete
// schedule of the channel, keyed by its ID.
type CreateRequest struct {
	Channels map[string]Channel `json:"channels"`
}
