package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

const (
	formatTree = "tree"
	formatJSON = "json"
	formatDump = "dump"
)

func write(out io.Writer, format string, list *form.FieldList) error {
	snapshots := form.SnapshotList(list)
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshots)
	case formatDump:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(out, snapshots)
		return nil
	default:
		for _, snap := range snapshots {
			if err := writeTree(out, snap, 0); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeTree(out io.Writer, snap form.Snapshot, depth int) error {
	line := strings.Repeat("  ", depth) + snap.Type
	if snap.Name != "" {
		line += " " + snap.Name
	}
	if snap.Title != "" && snap.Title != snap.Name {
		line += fmt.Sprintf(" %q", snap.Title)
	}
	if snap.Level > 0 {
		line += fmt.Sprintf(" h%d", snap.Level)
	}
	if snap.Value != nil {
		line += fmt.Sprintf(" = %v", snap.Value)
	}
	if snap.Relation != nil {
		line += fmt.Sprintf(" -> %s (%d)", snap.Relation.Target, snap.Relation.Count)
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return err
	}
	for _, child := range snap.Children {
		if err := writeTree(out, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
