package lessonplan

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/gyegi/calendar/internal/config"
)

// mdRenderer escapes raw HTML found in the markdown source.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps()),
)

var mdSpecial = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`,
	"#", `\#`, "|", `\|`, "<", `\<`, ">", `\>`,
)

// Markdown renders the plan body, worksheet excluded.
func Markdown(p *Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", mdSpecial.Replace(p.Title))
	fmt.Fprintf(&b, "**%s:** %s  \n", config.PrintLabelGrade, mdSpecial.Replace(p.Grade))
	fmt.Fprintf(&b, "**%s:** %s\n\n", config.PrintLabelGenerated, p.CreatedAt.Format(config.PrintDateFormat))

	fmt.Fprintf(&b, "## %s\n\n", config.PrintHeadObjectives)
	for _, o := range p.Objectives {
		fmt.Fprintf(&b, "- %s\n", mdSpecial.Replace(o))
	}

	fmt.Fprintf(&b, "\n## %s\n\n", config.PrintHeadFlow)
	fmt.Fprintf(&b, "| %s | %s |\n| --- | --- |\n", config.PrintColTime, config.PrintColActivity)
	for _, a := range p.Activities {
		fmt.Fprintf(&b, "| %s | %s |\n", mdSpecial.Replace(a.Time), mdSpecial.Replace(a.Content))
	}
	return b.String()
}

// WorksheetMarkdown renders the student questions.
func WorksheetMarkdown(p *Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", config.PrintHeadWorksheet)
	for i, q := range p.Questions {
		fmt.Fprintf(&b, "\n**Q%d.** %s\n", i+1, mdSpecial.Replace(q))
	}
	return b.String()
}

var pageTemplate = template.Must(template.New("plan").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Noto Sans KR', sans-serif; padding: 40px; line-height: 1.6; }
h1 { color: #333; border-bottom: 2px solid #4dabf7; padding-bottom: 10px; }
h2 { color: #555; margin-top: 30px; }
table { width: 100%; border-collapse: collapse; margin-top: 10px; }
th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
th { background-color: #e7f5ff; }
.worksheet { border: 2px dashed #aaa; padding: 20px; margin-top: 40px; }
.worksheet p { margin-bottom: 4em; }
</style>
</head>
<body>
{{.Body}}
<div class="worksheet">
{{.Worksheet}}
</div>
<script>window.onload = function() { window.print(); }</script>
</body>
</html>
`))

// RenderHTML converts the plan into a standalone print-ready page.
// Raw HTML in the markdown is escaped by goldmark, so the fragments are
// trusted by the page template.
func RenderHTML(p *Plan) ([]byte, error) {
	var body, sheet bytes.Buffer
	if err := mdRenderer.Convert([]byte(Markdown(p)), &body); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPlanRender, err)
	}
	if err := mdRenderer.Convert([]byte(WorksheetMarkdown(p)), &sheet); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPlanRender, err)
	}

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, struct {
		Title     string
		Body      template.HTML
		Worksheet template.HTML
	}{
		Title:     p.Title,
		Body:      template.HTML(body.String()),
		Worksheet: template.HTML(sheet.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPlanRender, err)
	}
	return out.Bytes(), nil
}

// Document is a rendered plan ready to print.
type Document struct {
	Name string
	HTML []byte
}

// Printer hands documents to the user.
type Printer interface {
	Print(doc Document) (string, error)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName derives a file name from the plan's event.
func FileName(p *Plan) string {
	id := unsafeName.ReplaceAllString(p.EventID, "-")
	if id == "" {
		id = p.CreatedAt.Format("20060102-150405")
	}
	return fmt.Sprintf(config.PrintFileNameFormat, id)
}

// FilePrinter writes documents to Dir, or to the temp dir when empty, then
// calls Open on the written path when set.
type FilePrinter struct {
	Dir  string
	Open func(path string) error
}

func (fp *FilePrinter) Print(doc Document) (string, error) {
	dir := fp.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, doc.Name)
	if err := os.WriteFile(path, doc.HTML, config.FilePermUserRW); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrPrint, err)
	}
	slog.Info(config.MsgPrinted,
		slog.String(config.LogKeyComponent, config.CompPlan),
		slog.String(config.LogKeyFile, path),
	)
	if fp.Open != nil {
		if err := fp.Open(path); err != nil {
			return path, fmt.Errorf("%s: %w", config.ErrPrint, err)
		}
	}
	return path, nil
}

// Export generates the plan for s, renders it and prints it. Any failure is
// reported as ErrExport and can simply be retried.
func Export(ctx context.Context, g Generator, pr Printer, s Summary) (*Plan, string, error) {
	plan, err := Start(ctx, g, s).Wait()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	path, err := Print(pr, plan)
	if err != nil {
		return nil, "", err
	}
	return plan, path, nil
}

// Print renders an already generated plan and prints it.
func Print(pr Printer, plan *Plan) (string, error) {
	page, err := RenderHTML(plan)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	path, err := pr.Print(Document{Name: FileName(plan), HTML: page})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	return path, nil
}
