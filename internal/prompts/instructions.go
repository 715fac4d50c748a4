package prompts

import (
	"fmt"
	"strings"
)

// Request identifies one of the three synthesis request kinds.
type Request string

// Request kinds issued to the generative backend.
const (
	RequestTrends Request = "trends"
	RequestSupply Request = "supply"
	RequestChat   Request = "chat"
)

const trendsInstructions = "你是一位资深的饮品行业数据分析师。根据用户的策略偏好提供深度市场分析和趋势预测。对于每一个数据点，你都会严谨地标记来源。"

const supplyInstructions = "你是一个饮品供应链数据库。根据用户的策略偏好生成原材料、包装或设备B2B列表。"

const chatInstructions = "你是一位专业的饮品供应链顾问。回答有关中国市场的价格、采购策略和配料趋势的问题。回答要简洁实用，适合移动端聊天界面阅读。"

const trendsTask = `请分析%s年中国饮品市场趋势。%s

任务要求：
1. 生成【市场现状分析】和【策略结论】，并标注该分析的数据来源（如果是综合分析，通常为AI推理）。
2. 生成%d个具体的流行饮品或原料趋势预测，并为每一个预测标注数据来源（例如：某某行业报告WEB，某某销售数据DB，或AI推理）。
3. 如果数据来源是【AI推理(AI)】，必须列出推导该结论的2-3个关键影响因子（例如：社交声量增长、原材料成本下降、健康趋势等）。

请确保所有文本内容都是中文。`

const supplyTask = "请生成%d条饮品行业的B2B供需信息（混合供应商和采购需求），相关类别：%s。%s 例如，如果是成本优先，提供价格低廉的原料；如果是独特性优先，提供稀有原料。请使用中文生成公司名、产品名和地点。"

var instructions = map[Request]string{
	RequestTrends: trendsInstructions,
	RequestSupply: supplyInstructions,
	RequestChat:   chatInstructions,
}

// Instructions returns the system framing for a request kind.
func Instructions(req Request) string {
	return instructions[req]
}

// DefaultCategory is used when a supply query names no category.
const DefaultCategory = "general"

// TrendTask composes the trend query for a period such as "2024/2025".
func TrendTask(period string, items int, directive string) string {
	return fmt.Sprintf(trendsTask, period, directive, items)
}

// SupplyTask composes the supply query for a listing category.
func SupplyTask(category string, listings int, directive string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	return fmt.Sprintf(supplyTask, listings, category, directive)
}
