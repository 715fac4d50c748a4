package contract

import "google.golang.org/genai"

func sourceSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"type": {
				Type:        genai.TypeString,
				Enum:        []string{string(SourceWeb), string(SourceDB), string(SourceAI)},
				Description: "数据来源类型: WEB(网络/公开数据), DB(数据库/历史统计), AI(AI推理/预测)",
			},
			"name": {
				Type:        genai.TypeString,
				Description: "来源名称 (例如: '36氪', '内部销售数据', 'Gemini趋势模型')",
			},
			"factors": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "如果是AI推理，列出3个关键影响因子 (例如: '社交媒体热度', '季节性因素', '成本波动')",
			},
		},
		Required: []string{"type", "name"},
	}
}

// TrendSchema returns the response schema for trend queries.
func TrendSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"marketAnalysis": {
				Type:        genai.TypeString,
				Description: "基于选定策略的市场现状深度分析 (中文，约50-80字)",
			},
			"strategicConclusion": {
				Type:        genai.TypeString,
				Description: "基于分析得出的关键结论或行动建议 (中文，约30-50字)",
			},
			"source": sourceSchema(),
			"items": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":          {Type: genai.TypeString},
						"title":       {Type: genai.TypeString, Description: "趋势名称 (中文, 例如: '桂花拿铁')"},
						"description": {Type: genai.TypeString, Description: "趋势的简短说明 (中文)"},
						"growthRate":  {Type: genai.TypeString, Description: "增长率 (例如: '+15%')"},
						"category":    {Type: genai.TypeString, Description: "分类 (中文, 例如: '茶饮', '咖啡', '小料')"},
						"imageUrl":    {Type: genai.TypeString, Description: "A placeholder image keyword related to the drink"},
						"source":      sourceSchema(),
					},
					Required: []string{"id", "title", "description", "growthRate", "category", "source"},
				},
			},
		},
		Required: []string{"marketAnalysis", "strategicConclusion", "items", "source"},
	}
}

// SupplySchema returns the response schema for supply queries.
func SupplySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":          {Type: genai.TypeString},
				"companyName": {Type: genai.TypeString, Description: "公司名称 (中文)"},
				"product":     {Type: genai.TypeString, Description: "产品名称 (中文)"},
				"price":       {Type: genai.TypeString, Description: "价格 (中文格式, 例如: '¥25/kg')"},
				"location":    {Type: genai.TypeString, Description: "地点 (中文)"},
				"type":        {Type: genai.TypeString, Enum: []string{string(ListingSupply), string(ListingDemand)}},
				"verified":    {Type: genai.TypeBoolean},
				"validityDays": {
					Type:        genai.TypeInteger,
					Description: "信息有效期天数 (可选, 3-13)",
				},
			},
			Required: []string{"id", "companyName", "product", "price", "location", "type", "verified"},
		},
	}
}
