package awardees

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// StorageKey derives the object key for an uploaded photo:
// {epoch-millis}-{sanitized-original-name}. Two uploads in the same
// millisecond with the same original name collide and overwrite silently;
// that risk is accepted. An empty or fully-unsafe original name falls back
// to a random uuid so the key never ends in a bare dash.
func StorageKey(originalName string) string {
	name := sanitizeFilename(originalName)
	if name == "" {
		name = uuid.NewString()
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
}

func sanitizeFilename(name string) string {
	// strip any client-supplied directory components
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" || name == "/" || name == "." {
		return ""
	}
	return name
}
