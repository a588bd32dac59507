package core

// EvidenceRecord 是知识库/证据侧的产品子记录（富化流水线产出）。
// KeyActives 是整理过的关键活性成分标签。
type EvidenceRecord struct {
	KeyActives []string
	Source     string
}

// IngredientRecord 是成分表子记录（原始表格行产出）。
// Raw 是未切分的全成分文本，List 是已切分的成分名列表。
type IngredientRecord struct {
	Raw  string
	List []string
}

// RoutineStep 是护肤流程中的一步。
//
// 同一步骤的数据可能来自不同上游（目录原始行 / 富化流水线 / 成分表），
// 各来源填充的字段不同，冲突检测按固定顺序逐个尝试提取活性成分。
type RoutineStep struct {
	Name    string
	Product *ProductVector

	Actives     []string
	Evidence    *EvidenceRecord
	Ingredients *IngredientRecord
}

// RoutinePlan 是早晚两套有序步骤组成的护肤方案，冲突检测只读不改。
type RoutinePlan struct {
	Morning []RoutineStep
	Evening []RoutineStep
}

// Steps 按 早间、晚间 的顺序返回全部步骤。
func (r *RoutinePlan) Steps() []RoutineStep {
	if r == nil {
		return nil
	}
	out := make([]RoutineStep, 0, len(r.Morning)+len(r.Evening))
	out = append(out, r.Morning...)
	out = append(out, r.Evening...)
	return out
}
