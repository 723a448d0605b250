package entrygen

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is the single object repeated in the generated array.
type Entry struct {
	Alpha string `json:"alpha"`
}

// Literal renders the entry as it appears in the output, e.g. {"alpha" : "VOO"}.
func (e Entry) Literal() (string, error) {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(e.Alpha); err != nil {
		return "", fmt.Errorf("encode entry value: %w", err)
	}

	// Encode terminates the value with a newline.
	value := bytes.TrimSuffix(b.Bytes(), []byte{'\n'})

	return fmt.Sprintf("{%q : %s}", EntryKey, value), nil
}
