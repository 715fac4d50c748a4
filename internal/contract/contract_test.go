package contract_test

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/drinkchain/internal/contract"
)

const validTrends = `{
  "marketAnalysis": "茶饮市场持续增长",
  "strategicConclusion": "布局低糖产品",
  "source": {"type": "AI", "name": "趋势模型", "factors": ["社交声量", "健康趋势"]},
  "items": [
    {"id": "t1", "title": "桂花拿铁", "description": "秋季限定", "growthRate": "+15%",
     "category": "咖啡", "source": {"type": "WEB", "name": "36氪"}},
    {"id": "t2", "title": "黄皮", "description": "小众水果", "growthRate": "+40%",
     "category": "小料", "source": {"type": "AI", "name": "推理"}}
  ]
}`

func TestParseTrends(t *testing.T) {
	got, err := contract.ParseTrends(validTrends)
	if err != nil {
		t.Fatalf("ParseTrends() error = %v", err)
	}

	if got.MarketAnalysis != "茶饮市场持续增长" {
		t.Errorf("marketAnalysis = %q", got.MarketAnalysis)
	}
	if got.Source.Kind() != contract.SourceAI {
		t.Errorf("source kind = %s, want AI", got.Source.Kind())
	}
	if diff := cmp.Diff([]string{"社交声量", "健康趋势"}, got.Source.Factors()); diff != "" {
		t.Errorf("factors mismatch (-want +got):\n%s", diff)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Items))
	}
	if got.Items[0].Source.Kind() != contract.SourceWeb {
		t.Errorf("item[0] source = %s, want WEB", got.Items[0].Source.Kind())
	}
	if len(got.Warnings) != 1 {
		t.Errorf("warnings = %v, want one for AI source without factors", got.Warnings)
	}
}

func TestParseTrendsFenced(t *testing.T) {
	if _, err := contract.ParseTrends("```json\n" + validTrends + "\n```"); err != nil {
		t.Fatalf("fenced payload rejected: %v", err)
	}
}

func TestParseTrendsRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "市场分析暂不可用"},
		{"missing items", `{"marketAnalysis":"a","strategicConclusion":"b","source":{"type":"DB","name":"n"}}`},
		{"missing source", `{"marketAnalysis":"a","strategicConclusion":"b","items":[]}`},
		{"unknown source type", `{"marketAnalysis":"a","strategicConclusion":"b","source":{"type":"RUMOR","name":"n"},"items":[]}`},
		{"item missing title", `{"marketAnalysis":"a","strategicConclusion":"b","source":{"type":"DB","name":"n"},
			"items":[{"id":"1","description":"d","growthRate":"+1%","category":"c","source":{"type":"DB","name":"n"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := contract.ParseTrends(tt.raw)
			if !errors.Is(err, contract.ErrUnparseable) {
				t.Errorf("error = %v, want ErrUnparseable", err)
			}
		})
	}
}

func TestParseSupply(t *testing.T) {
	raw := `[
	  {"id":"s1","companyName":"云南茶园","product":"普洱","price":"¥25/kg","location":"普洱","type":"SUPPLY","verified":true,"validityDays":5},
	  {"id":"s2","companyName":"上海饮品","product":"燕麦奶","price":"¥12/L","location":"上海","type":"DEMAND","verified":false}
	]`

	got, err := contract.ParseSupply(raw)
	if err != nil {
		t.Fatalf("ParseSupply() error = %v", err)
	}

	want := []contract.Listing{
		{ID: "s1", CompanyName: "云南茶园", Product: "普洱", Price: "¥25/kg", Location: "普洱", Type: contract.ListingSupply, Verified: true, ValidityDays: 5},
		{ID: "s2", CompanyName: "上海饮品", Product: "燕麦奶", Price: "¥12/L", Location: "上海", Type: contract.ListingDemand},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listings mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSupplyRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"object not array", `{"id":"s1"}`},
		{"null", `null`},
		{"bad type", `[{"id":"1","companyName":"c","product":"p","price":"1","location":"l","type":"LEASE","verified":true}]`},
		{"missing verified", `[{"id":"1","companyName":"c","product":"p","price":"1","location":"l","type":"SUPPLY"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := contract.ParseSupply(tt.raw); !errors.Is(err, contract.ErrUnparseable) {
				t.Errorf("error = %v, want ErrUnparseable", err)
			}
		})
	}
}

func TestDataSourceJSON(t *testing.T) {
	data, err := json.Marshal(contract.Web("36氪"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"type":"WEB","name":"36氪"}` {
		t.Errorf("marshal = %s", data)
	}

	var src contract.DataSource
	if err := json.Unmarshal([]byte(`{"type":"DB","name":"销售","factors":["x"]}`), &src); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if src.Kind() != contract.SourceDB || src.Factors() != nil {
		t.Errorf("DB source should drop factors, got %s %v", src.Kind(), src.Factors())
	}
}

func TestSchemas(t *testing.T) {
	if s := contract.TrendSchema(); len(s.Required) != 4 {
		t.Errorf("trend schema required = %v", s.Required)
	}
	if s := contract.SupplySchema(); s.Items == nil || len(s.Items.Required) != 7 {
		t.Error("supply schema should require seven listing fields")
	}
}
