package changes

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/samber/lo"
	diff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// DefinitionChange describes how one definition differs between two
// generated documents.
type DefinitionChange struct {
	Name             string
	Changes          string
	ChangesDeltaJson string
}

type ChangesOverview struct {
	DefinitionsUnchanged       []string
	DefinitionsToCreate        []string
	DefinitionsToDelete        []string
	DefinitionsChangesOverview []*DefinitionChange
	RootsAdded                 []string
	RootsRemoved               []string
}

func (s *ChangesOverview) HasChanges() bool {
	return len(s.DefinitionsToCreate)+len(s.DefinitionsToDelete)+len(s.DefinitionsChangesOverview)+len(s.RootsAdded)+len(s.RootsRemoved) > 0
}

type document struct {
	Definitions map[string]json.RawMessage `json:"definitions"`
	Properties  map[string]json.RawMessage `json:"properties"`
}

func parseDocument(content []byte) (*document, error) {
	doc := &document{}
	if len(strings.TrimSpace(string(content))) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(content, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GenerateChangesOverview compares the definitions of a previously generated
// document with a new one. An empty origin counts as a document without
// definitions.
func GenerateChangesOverview(origin, updated []byte) (*ChangesOverview, error) {
	originDoc, err := parseDocument(origin)
	if err != nil {
		return nil, fmt.Errorf("failed to parse previous document: %w", err)
	}
	updatedDoc, err := parseDocument(updated)
	if err != nil {
		return nil, fmt.Errorf("failed to parse new document: %w", err)
	}

	overview := &ChangesOverview{
		DefinitionsUnchanged:       []string{},
		DefinitionsToCreate:        []string{},
		DefinitionsToDelete:        []string{},
		DefinitionsChangesOverview: []*DefinitionChange{},
	}

	originNames := sortedKeys(originDoc.Definitions)
	updatedNames := sortedKeys(updatedDoc.Definitions)

	for _, name := range originNames {
		if _, ok := updatedDoc.Definitions[name]; !ok {
			overview.DefinitionsToDelete = append(overview.DefinitionsToDelete, name)
		}
	}

	differ := diff.New()
	deltaFormatter := formatter.NewDeltaFormatter()
	for _, name := range updatedNames {
		originDefinition, ok := originDoc.Definitions[name]
		if !ok {
			overview.DefinitionsToCreate = append(overview.DefinitionsToCreate, name)
			continue
		}

		change, err := generateDefinitionChange(differ, deltaFormatter, name, originDefinition, updatedDoc.Definitions[name])
		if err != nil {
			return nil, err
		}
		if change.Changes == "" {
			overview.DefinitionsUnchanged = append(overview.DefinitionsUnchanged, name)
		} else {
			overview.DefinitionsChangesOverview = append(overview.DefinitionsChangesOverview, change)
		}
	}

	originRoots := sortedKeys(originDoc.Properties)
	updatedRoots := sortedKeys(updatedDoc.Properties)
	overview.RootsAdded, overview.RootsRemoved = lo.Difference(updatedRoots, originRoots)

	return overview, nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

func generateDefinitionChange(
	differ *diff.Differ,
	deltaFormatter *formatter.DeltaFormatter,
	name string,
	origin json.RawMessage,
	updated json.RawMessage,
) (*DefinitionChange, error) {
	if origin == nil || updated == nil {
		return nil, errors.New("origin and new definition cannot be nil")
	}

	var originMap map[string]interface{}
	err := json.Unmarshal(origin, &originMap)
	if err != nil {
		return nil, err
	}

	d, err := differ.Compare(origin, updated)
	if err != nil {
		return nil, err
	}

	changes := ""
	changesDelta := "{}"
	if d.Modified() {
		asciiFormatter := formatter.NewAsciiFormatter(originMap, formatter.AsciiFormatterConfig{})
		changesDelta, err = deltaFormatter.Format(d)
		if err != nil {
			return nil, err
		}
		changes, err = asciiFormatter.Format(d)
		if err != nil {
			return nil, err
		}
	}

	return &DefinitionChange{
		Name:             name,
		Changes:          changes,
		ChangesDeltaJson: changesDelta,
	}, nil
}

func (s *ChangesOverview) PrettyPrint() {
	s.Fprint(color.Output)
}

func (s *ChangesOverview) Fprint(w io.Writer) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	blue := color.New(color.FgBlue, color.Bold)
	gray := color.New(color.FgHiBlack)
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	bold.Fprintln(w, "📊 Schema Changes Overview")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	totalChanges := len(s.DefinitionsToCreate) + len(s.DefinitionsToDelete) + len(s.DefinitionsChangesOverview) +
		len(s.RootsAdded) + len(s.RootsRemoved)
	fmt.Fprintf(w, "\n📈 Summary: %d total changes\n", totalChanges)
	if len(s.DefinitionsToCreate) > 0 {
		green.Fprintf(w, "  + %d definitions added\n", len(s.DefinitionsToCreate))
	}
	if len(s.DefinitionsToDelete) > 0 {
		red.Fprintf(w, "  - %d definitions removed\n", len(s.DefinitionsToDelete))
	}
	if len(s.DefinitionsChangesOverview) > 0 {
		yellow.Fprintf(w, "  ~ %d definitions changed\n", len(s.DefinitionsChangesOverview))
	}
	if len(s.DefinitionsUnchanged) > 0 {
		blue.Fprintf(w, "  = %d definitions unchanged\n", len(s.DefinitionsUnchanged))
	}
	for _, root := range s.RootsAdded {
		green.Fprintf(w, "  + root %s\n", root)
	}
	for _, root := range s.RootsRemoved {
		red.Fprintf(w, "  - root %s\n", root)
	}

	if !s.HasChanges() {
		gray.Fprintln(w, "\n✨ No changes detected - schema is up to date")
		return
	}

	if len(s.DefinitionsToCreate) > 0 {
		fmt.Fprintln(w)
		green.Fprintln(w, "🆕 Definitions Added:")
		for i, name := range s.DefinitionsToCreate {
			fmt.Fprintf(w, "  %d. ", i+1)
			green.Fprintf(w, "%s\n", name)
		}
	}

	if len(s.DefinitionsToDelete) > 0 {
		fmt.Fprintln(w)
		red.Fprintln(w, "🗑️  Definitions Removed:")
		for i, name := range s.DefinitionsToDelete {
			fmt.Fprintf(w, "  %d. ", i+1)
			red.Fprintf(w, "%s\n", name)
		}
	}

	if len(s.DefinitionsChangesOverview) > 0 {
		fmt.Fprintln(w)
		yellow.Fprintln(w, "📝 Definitions Changed:")
		for i, change := range s.DefinitionsChangesOverview {
			fmt.Fprintf(w, "  %d. ", i+1)
			yellow.Fprintf(w, "%s\n", change.Name)

			for _, line := range strings.Split(change.Changes, "\n") {
				if line == "" {
					continue
				}
				if strings.HasPrefix(line, "+") {
					green.Fprintf(w, "       %s\n", line)
				} else if strings.HasPrefix(line, "-") {
					red.Fprintf(w, "       %s\n", line)
				} else {
					gray.Fprintf(w, "       %s\n", line)
				}
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))
}
