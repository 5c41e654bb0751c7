package generator

// Per-type DoD templates. Each renders a markdown document from a dodView;
// the shared header carries the ticket identity and the type-specific body
// lists the completion criteria reviewers check against.

const headerTemplate = `# Definition of Done — {{.Ticket.Key}}

**Summary**: {{.Ticket.Summary}}
{{if .Ticket.Priority}}**Priority**: {{.Ticket.Priority}}
{{end}}{{if .Ticket.Assignee}}**Assignee**: {{.Ticket.Assignee}}
{{end}}{{if .Ticket.Labels}}**Labels**: {{join .Ticket.Labels ", "}}
{{end}}
`

const backendTemplate = headerTemplate + `## Backend criteria

{{range .Ticket.Services}}- [ ] Changes to ` + "`{{.}}`" + ` are implemented and covered by tests
{{end}}- [ ] API contract changes are documented
- [ ] Database migrations (if any) are reversible
- [ ] No regression in existing integration tests
{{template "extra" .}}`

const frontendTemplate = headerTemplate + `## Frontend criteria

{{range .Ticket.Components}}- [ ] ` + "`{{.}}`" + ` renders correctly in all supported browsers
{{end}}- [ ] Accessibility checks pass for changed views
- [ ] Visual review approved by design
- [ ] No console errors in changed flows
{{template "extra" .}}`

const infrastructureTemplate = headerTemplate + `## Infrastructure criteria

{{range .Ticket.Environments}}- [ ] Rollout to ` + "`{{.}}`" + ` is verified
{{end}}- [ ] Rollback procedure is documented and tested
- [ ] Monitoring and alerting cover the changed resources
- [ ] Capacity impact reviewed
{{template "extra" .}}`

const bugTemplate = headerTemplate + `## Bug criteria

**Severity**: {{.Ticket.Severity}}

Reproduction steps verified fixed:
{{range .Ticket.StepsToReproduce}}- [ ] {{.}}
{{end}}- [ ] Regression test added covering the failure
- [ ] Root cause noted on the ticket
{{template "extra" .}}`

// extraTemplate renders caller-supplied parameters, if any.
const extraTemplate = `{{define "extra"}}{{if .Extra}}
## Additional notes

{{range .Extra}}- **{{.Name}}**: {{.Value}}
{{end}}{{end}}{{end}}`
