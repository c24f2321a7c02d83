package domain

import "encoding/json"

const emptyObject = "{}"

// Entity is a synchronized object. Latest is the last applied payload and is
// replaced wholesale, never merged.
type Entity struct {
	ID     EntityID        `json:"id"`
	Latest json.RawMessage `json:"latest"`
	Render bool            `json:"render"`
	Locked bool            `json:"locked"`
}
