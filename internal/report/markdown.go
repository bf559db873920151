package report

import (
	"fmt"
	"strings"

	"github.com/tw-event-radar/radar/internal/constants"
)

const (
	placeholderEvents   = "今日沒有事件排行資料（EventRadarPlus 為空）。"
	placeholderHeat     = "今日沒有公司熱度資料（CompanyHeat 為空）。"
	placeholderRun      = "今日沒有 RunLog 資料。"
	placeholderEvidence = "- 代表新聞：無（未在 News 中匹配到同公司+同事件）"
)

var heatColumns = []Column{
	{Title: "公司"},
	{Title: "熱度", Right: true},
	{Title: "出現篇數", Right: true},
	{Title: "高信心篇數", Right: true},
	{Title: "主要主題"},
	{Title: "主要子題"},
}

// Title is the localized document title.
func (r *Report) Title() string {
	return constants.ReportTitlePrefix + r.Date
}

// TopLine is the one-line highlight of the hottest event, empty when there are
// no ranked events.
func (r *Report) TopLine() string {
	if r.TopEvent == nil {
		return ""
	}
	e := r.TopEvent
	return fmt.Sprintf("%s｜%s｜%s｜熱度 %s（Δ%s）", safe(e.Event), safe(e.Topic), safe(e.Company), safe(e.Heat), safe(e.Delta))
}

// Sections returns the document blocks in their fixed order: front matter,
// summary, ranked events, company heat and run status.
func (r *Report) Sections() []Section {
	return []Section{
		r.frontMatter(),
		r.summarySection(),
		r.eventsSection(),
		r.heatSection(),
		r.runSection(),
	}
}

// Markdown renders the document.
func (r *Report) Markdown() string {
	var lines []string
	for _, s := range r.Sections() {
		lines = append(lines, s.render()...)
	}
	return strings.Join(lines, "\n")
}

func (r *Report) frontMatter() Section {
	return Section{Lines: []string{
		"---",
		fmt.Sprintf(`title: "%s"`, r.Title()),
		fmt.Sprintf(`date: "%s"`, r.Date),
		fmt.Sprintf(`type: "%s"`, constants.ReportType),
		fmt.Sprintf("range_days: %d", constants.RangeDays),
		"exclude_companies: " + pyList(constants.ExcludedCompanies),
		"---\n",
	}}
}

func (r *Report) summarySection() Section {
	lines := []string{
		fmt.Sprintf("- 事件數：%d", r.Summary.TotalEvents),
		fmt.Sprintf("- 新增事件（NEW）：%d", r.Summary.NewEvents),
		fmt.Sprintf("- 熱度上升事件（Δ>0）：%d", r.Summary.TrendingEvents),
	}
	if top := r.TopLine(); top != "" {
		lines = append(lines, "- 最高熱度事件："+top)
	}
	lines = append(lines, "")
	return Section{Heading: "今日摘要", Lines: lines}
}

func (r *Report) eventsSection() Section {
	s := Section{Heading: "事件排行（EventRadarPlus）"}
	if len(r.Events) == 0 {
		s.Placeholder = placeholderEvents
		return s
	}
	for _, b := range r.Events {
		s.Lines = append(s.Lines, b.lines()...)
	}
	return s
}

func (b EventBlock) lines() []string {
	e := b.Event
	tag := ""
	if e.IsNew() {
		tag = " **NEW**"
	}
	lines := []string{
		fmt.Sprintf("### %d) %s%s", b.Rank, safe(e.Event), tag),
		"- 極性：" + safe(e.Polarity),
		"- 主題：" + safe(e.Topic),
		"- 公司：" + safe(e.Company),
		fmt.Sprintf("- 熱度：%s（Δ%s）｜篇數：%s｜高信心：%s", safe(e.Heat), safe(e.Delta), safe(e.Articles), safe(e.HighConfidence)),
	}
	if kw := safe(e.Keywords); kw != "" {
		lines = append(lines, "- 命中詞："+kw)
	}

	if len(b.Evidence) == 0 {
		return append(lines, placeholderEvidence+"\n")
	}
	lines = append(lines, "- 代表新聞：")
	for j, n := range b.Evidence {
		lines = append(lines, fmt.Sprintf("  %d. [%s](%s)（%s｜%s）", j+1, safe(n.Title), safe(n.Link), safe(n.Source), safe(n.PublishedAt)))
	}
	return append(lines, "")
}

func (r *Report) heatSection() Section {
	s := Section{Heading: fmt.Sprintf("公司熱度（CompanyHeat｜Top %d）", constants.DefaultHeatRows)}
	if len(r.Heat) == 0 {
		s.Placeholder = placeholderHeat
		return s
	}
	t := &Table{Columns: heatColumns}
	for _, h := range r.Heat {
		t.Rows = append(t.Rows, []string{
			safe(h.Company), safe(h.Heat), safe(h.Articles), safe(h.HighConfidence), safe(h.MainTopic), safe(h.MainSubTopic),
		})
	}
	s.Table = t
	return s
}

func (r *Report) runSection() Section {
	s := Section{Heading: "抓取狀態（RunLog｜最新一次）"}
	if r.Run == nil {
		s.Placeholder = placeholderRun
		return s
	}
	run := r.Run
	s.Lines = []string{
		"- run_at：" + safe(run.RunAt),
		"- cutoff_dt：" + safe(run.CutoffAt),
		fmt.Sprintf("- keywords：%s｜domains：%s", safe(run.Keywords), safe(run.Domains)),
		"- candidates_grouped：" + safe(run.CandidatesGrouped),
		"- rows_fetched：" + safe(run.RowsFetched),
		"- fallback_rate_pct：" + safe(run.FallbackRatePct),
		"- cache_path：" + safe(run.CachePath),
		"",
	}
	return s
}

func (s Section) render() []string {
	var lines []string
	if s.Heading != "" {
		lines = append(lines, "## "+s.Heading)
	}
	if s.Placeholder != "" {
		return append(lines, "> "+s.Placeholder+"\n")
	}
	lines = append(lines, s.Lines...)
	if s.Table != nil {
		lines = append(lines, s.Table.render()...)
	}
	return lines
}

func (t *Table) render() []string {
	header := make([]string, len(t.Columns))
	align := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Title
		align[i] = "---"
		if c.Right {
			align[i] = "---:"
		}
	}
	lines := []string{
		"| " + strings.Join(header, " | ") + " |",
		"|" + strings.Join(align, "|") + "|",
	}
	for _, row := range t.Rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return append(lines, "")
}

// safe renders a cell verbatim apart from surrounding whitespace.
func safe(s string) string {
	return strings.TrimSpace(s)
}

// pyList formats values as a single-quoted flow list, e.g. ['a', 'b'].
func pyList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "\\'") + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// evidenceCount is the number of events that found at least one news record.
func (r *Report) evidenceCount() int {
	n := 0
	for _, b := range r.Events {
		if len(b.Evidence) > 0 {
			n++
		}
	}
	return n
}

// Stats returns per-section sizes, used for logging.
func (r *Report) Stats() map[string]int {
	return map[string]int{
		"events":        len(r.Events),
		"with_evidence": r.evidenceCount(),
		"heat_rows":     len(r.Heat),
	}
}
