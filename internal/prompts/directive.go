package prompts

import (
	"fmt"
	"strings"
)

const (
	defaultDirective = "关注全品类综合表现。"
	costDirective    = "重点关注：低成本替代品、高性价比原料、下沉市场、高利润率产品。忽略昂贵的小众原料。"
	uniqueDirective  = "重点关注：猎奇口味、创新搭配、高颜值、社交媒体打卡属性、稀有原料。"
	qualityDirective = "重点关注：有机认证、单一产地、健康无添加、顶级口感、高端市场。"

	customTemplate = "严格按照用户自定义的三个优先级指标（按重要性排序）进行筛选和推荐：%s。"

	// GeneralContext replaces an empty custom context.
	GeneralContext = "通用"
)

// Directive returns the directive text for a strategy. Built-in strategies map
// to fixed strings and ignore context. Unknown strategies fall back to DEFAULT.
func Directive(strategy Strategy, context string) string {
	switch strategy {
	case StrategyCost:
		return costDirective
	case StrategyUnique:
		return uniqueDirective
	case StrategyQuality:
		return qualityDirective
	case StrategyCustom:
		context = strings.TrimSpace(context)
		if context == "" {
			context = GeneralContext
		}
		return fmt.Sprintf(customTemplate, context)
	default:
		return defaultDirective
	}
}

// FactorContext renders prioritized factors as "1. f1, 2. f2, 3. f3".
// Blank factors are skipped and the remaining ones are numbered consecutively
// in their original order.
func FactorContext(factors []string) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d. %s", len(parts)+1, f))
	}
	return strings.Join(parts, ", ")
}
