package core

// ConflictSchemaVersion 是冲突检测输入/输出的协议版本。
// 调用方遇到版本不一致时必须整体拒绝载荷，禁止"尽力解析"。
const ConflictSchemaVersion = "skinkit.conflict/v1"

// Locale 是消息语言，只影响文案，不影响规则结果。
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// Severity 是冲突结论的严重级别。
type Severity string

const (
	SeverityWarn  Severity = "warn"  // 建议错开早晚/隔天使用
	SeverityBlock Severity = "block" // 禁止同一流程内叠加
)

// ConflictFinding 是一条冲突结论。
// RuleID 是稳定的规则标识，同一规则多次命中会折叠为一条。
// StepIndex 指向触发冲突的步骤（按 RoutinePlan.Steps 的下标），可为空。
type ConflictFinding struct {
	Severity  Severity
	RuleID    string
	Message   string
	StepIndex *int
}

// ConflictInput 是冲突检测的输入：现有流程 + 可选的待评估产品。
type ConflictInput struct {
	SchemaVersion string
	Routine       *RoutinePlan
	Candidate     *ProductVector
	Locale        Locale
}

// ConflictOutput 是冲突检测的输出。
//
// Safe 为 true 且 Findings 为空时，Summary 仍会区分两种情况：
// "确实检查过且安全" 与 "没提取到任何活性成分、检查可能不完整"。
type ConflictOutput struct {
	SchemaVersion string
	Safe          bool
	Findings      []ConflictFinding
	Summary       string
}
