package reportpdf

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-reportpdf/internal/yamlutil"
)

func TestPayload_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload Payload
		wantErr error
	}{
		{
			name:    "empty payload is valid",
			payload: Payload{},
		},
		{
			name: "unknown classification is valid",
			payload: Payload{
				TotalPages:    1,
				PageSummaries: []PageSummary{{PageNumber: 1, Classification: "appendix"}},
			},
		},
		{
			name:    "negative total pages",
			payload: Payload{TotalPages: -3},
			wantErr: ErrInvalidTotalPages,
		},
		{
			name: "page number zero",
			payload: Payload{
				TotalPages:    2,
				PageSummaries: []PageSummary{{PageNumber: 1}, {PageNumber: 0}},
			},
			wantErr: ErrInvalidPageNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.payload.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPayload_ValidateNamesTheEntry(t *testing.T) {
	t.Parallel()

	p := Payload{PageSummaries: []PageSummary{{PageNumber: 4}, {PageNumber: -1}}}
	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "pageSummaries[1]") {
		t.Errorf("error = %v, want it to name pageSummaries[1]", err)
	}
}

func TestClassificationLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Classification
		want string
	}{
		{ClassificationNormal, "一般內容"},
		{ClassificationTOC, "目錄頁"},
		{ClassificationPureImage, "純圖片"},
		{ClassificationBlank, "空白/水印"},
		{ClassificationCover, "封面"},
		{"unknown_tag", "unknown_tag"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			t.Parallel()

			if got := ClassificationLabel(tt.in); got != tt.want {
				t.Errorf("ClassificationLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPayload_DecodesAnalysisResult(t *testing.T) {
	t.Parallel()

	doc := `{
  "documentTitle": "季度報告.pdf",
  "languageLabel": "繁體中文",
  "totalPages": 5,
  "globalSummary": {
    "bullets": ["a", "b"],
    "expansions": {"key_conclusions": "k", "core_data": "c", "risks_and_actions": "r"}
  },
  "aggregatedKeywords": ["x"],
  "pageSummaries": [
    {"page_number": 3, "classification": "toc", "bullets": [], "keywords": ["y"], "skipped": true, "skip_reason": "目錄"}
  ],
  "wordcloudUrl": "/static/cloud.png",
  "fontUrl": "https://cdn.example/NotoSansTC.ttf"
}`

	var p Payload
	if err := yamlutil.UnmarshalDocument([]byte(doc), &p); err != nil {
		t.Fatalf("UnmarshalDocument() error = %v", err)
	}

	if p.DocumentTitle != "季度報告.pdf" || p.TotalPages != 5 || p.LanguageLabel != "繁體中文" {
		t.Errorf("header fields = %+v", p)
	}
	if p.GlobalSummary.Expansions.RisksAndActions != "r" {
		t.Errorf("RisksAndActions = %q, want r", p.GlobalSummary.Expansions.RisksAndActions)
	}
	if len(p.PageSummaries) != 1 {
		t.Fatalf("PageSummaries = %d, want 1", len(p.PageSummaries))
	}
	ps := p.PageSummaries[0]
	if ps.PageNumber != 3 || ps.Classification != ClassificationTOC || !ps.Skipped || ps.SkipReason != "目錄" {
		t.Errorf("page summary = %+v", ps)
	}
	if p.WordcloudURL != "/static/cloud.png" || p.FontURL != "https://cdn.example/NotoSansTC.ttf" {
		t.Errorf("WordcloudURL = %q, FontURL = %q", p.WordcloudURL, p.FontURL)
	}
}

func TestPayload_DecodesYAML(t *testing.T) {
	t.Parallel()

	doc := `documentTitle: 年報.docx
totalPages: 2
globalSummary:
  bullets: [營收成長]
  expansions:
    core_data: 營收 1.2M
pageSummaries:
  - page_number: 1
    classification: cover
`

	var p Payload
	if err := yamlutil.UnmarshalDocument([]byte(doc), &p); err != nil {
		t.Fatalf("UnmarshalDocument() error = %v", err)
	}
	if p.DocumentTitle != "年報.docx" || p.TotalPages != 2 {
		t.Errorf("header fields = %+v", p)
	}
	if len(p.GlobalSummary.Bullets) != 1 || p.GlobalSummary.Expansions.CoreData != "營收 1.2M" {
		t.Errorf("GlobalSummary = %+v", p.GlobalSummary)
	}
	if len(p.PageSummaries) != 1 || p.PageSummaries[0].Classification != ClassificationCover {
		t.Errorf("PageSummaries = %+v", p.PageSummaries)
	}
}

func TestPayload_Report(t *testing.T) {
	t.Parallel()

	p := Payload{
		DocumentTitle: "doc",
		GlobalSummary: GlobalSummary{
			Bullets:    []string{"**bold** point"},
			Expansions: Expansions{KeyConclusions: "- one\n- two"},
		},
		PageSummaries: []PageSummary{
			{PageNumber: 2, Classification: ClassificationBlank, Bullets: []string{"`code` span"}},
		},
	}

	rep := p.report(PlainText)

	if rep.Bullets[0] != "bold point" {
		t.Errorf("Bullets[0] = %q, want %q", rep.Bullets[0], "bold point")
	}
	if rep.KeyConclusions != "one\ntwo" {
		t.Errorf("KeyConclusions = %q, want %q", rep.KeyConclusions, "one\ntwo")
	}
	if rep.CoreData != "" || rep.Risks != "" {
		t.Errorf("empty expansions changed: %q %q", rep.CoreData, rep.Risks)
	}
	if got := rep.Pages[0]; got.Number != 2 || got.Classification != "blank" || got.Bullets[0] != "code span" {
		t.Errorf("Pages[0] = %+v", got)
	}

	// Input slices are never modified.
	if p.GlobalSummary.Bullets[0] != "**bold** point" {
		t.Errorf("payload modified: %q", p.GlobalSummary.Bullets[0])
	}
}
