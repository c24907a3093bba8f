package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by the Datastar client.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarRequestHeader is set to "true" on every Datastar fetch.
	DataStarRequestHeader = "Datastar-Request"
)

// PatchOuter morphs the target element itself, keeping focus and input
// state where the markup allows it.
const PatchOuter = datastar.ElementPatchModeOuter

// IsDataStar reports whether r was issued by the Datastar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader)
}
