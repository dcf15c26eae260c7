package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
}

// metadataer matches zerr.Error's metadata accessor.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one layer of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err's chain. zerr layers contribute their own
// message and metadata; the first plain error ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entry := ErrorEntry{Message: current.Error()}
			mergeMetadata(&entry, pending)
			entries = append(entries, entry)
			break
		}

		var md map[string]any
		if mder, ok := current.(metadataer); ok {
			md = mder.Metadata()
		}

		// zerr.With on a plain error adds a layer with an empty message.
		// Its metadata belongs to the neighbouring layer.
		switch {
		case m.Message() != "":
			entry := ErrorEntry{Message: m.Message(), Metadata: md}
			mergeMetadata(&entry, pending)
			pending = nil
			entries = append(entries, entry)
		case len(entries) > 0:
			mergeMetadata(&entries[len(entries)-1], md)
		default:
			pending = md
		}
		current = errors.Unwrap(current)
	}
	return entries
}

func mergeMetadata(dst *ErrorEntry, md map[string]any) {
	if len(md) == 0 {
		return
	}
	if dst.Metadata == nil {
		dst.Metadata = make(map[string]any, len(md))
	}
	for k, v := range md {
		dst.Metadata[k] = v
	}
}

// formatErrorEntries renders entries as "Error: ..." followed by a
// "Caused by:" list. Metadata keys are printed in sorted order.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var head, indent string
		if i == 0 {
			head, indent = "Error: ", "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
