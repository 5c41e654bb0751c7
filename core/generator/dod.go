package generator

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/donedone/dod-core/core/models"
)

// Input is the request for a single DoD generation.
type Input struct {
	Ticket *models.TicketRecord
	// Type overrides the ticket's own type tag when non-empty.
	Type string
	// Extra carries user-supplied parameter values rendered verbatim into
	// the document.
	Extra map[string]string
}

// Output is the generation result: either a rendered document with no
// errors, or a non-empty error list with no usable text.
type Output struct {
	DoD    string   `json:"dod"`
	Errors []string `json:"errors"`
}

// Artifact is a generated DoD document with persistence metadata.
type Artifact struct {
	ID          uuid.UUID `json:"id"`
	TicketKey   string    `json:"ticket_key"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

var dodTemplates = map[string]string{
	models.TicketTypeBackend:        backendTemplate,
	models.TicketTypeFrontend:       frontendTemplate,
	models.TicketTypeInfrastructure: infrastructureTemplate,
	models.TicketTypeBug:            bugTemplate,
}

type extraVM struct {
	Name  string
	Value string
}

type dodView struct {
	Ticket *models.TicketRecord
	Extra  []extraVM
}

// GenerateFromInput renders the DoD document for the given ticket and type.
// Structural problems with the input (nil or incomplete ticket, unknown type)
// are reported through Output.Errors with an empty DoD; only internal
// rendering failures return a Go error.
func GenerateFromInput(in Input) (*Output, error) {
	if in.Ticket == nil {
		return &Output{Errors: []string{"ticket record cannot be nil"}}, nil
	}

	typ := in.Type
	if typ == "" {
		typ = in.Ticket.Type
	}

	if res := in.Ticket.ValidateFor(typ); !res.Valid {
		slog.Debug("DoD generation rejected input", "key", in.Ticket.Key, "type", typ, "reasons", strings.Join(res.Reasons, "; "))
		return &Output{Errors: res.Reasons}, nil
	}

	src, ok := dodTemplates[typ]
	if !ok {
		return &Output{Errors: []string{fmt.Sprintf("no template for ticket type %q", typ)}}, nil
	}

	tpl, err := template.New(typ).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(src + extraTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", typ, err)
	}

	view := dodView{Ticket: in.Ticket, Extra: sortedExtras(in.Extra)}
	var out bytes.Buffer
	if err := tpl.Execute(&out, view); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", typ, err)
	}

	slog.Debug("DoD generated", "key", in.Ticket.Key, "type", typ, "length", out.Len())
	return &Output{DoD: out.String()}, nil
}

// NewArtifact wraps a successful generation result for persistence.
func NewArtifact(in Input, out *Output) (Artifact, error) {
	if in.Ticket == nil || in.Ticket.Key == "" {
		return Artifact{}, fmt.Errorf("artifact requires a ticket with a key")
	}
	if out == nil || out.DoD == "" || len(out.Errors) > 0 {
		return Artifact{}, fmt.Errorf("artifact requires a successful generation result")
	}
	return Artifact{
		ID:          uuid.New(),
		TicketKey:   in.Ticket.Key,
		Content:     out.DoD,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// sortedExtras flattens the extra map into a deterministic render order.
func sortedExtras(extra map[string]string) []extraVM {
	if len(extra) == 0 {
		return nil
	}
	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)
	vm := make([]extraVM, 0, len(names))
	for _, name := range names {
		vm = append(vm, extraVM{Name: name, Value: extra[name]})
	}
	return vm
}
