package conflict

import "regexp"

// Class 是活性成分的类别信号，冲突规则在类别层面判定，不看具体成分名。
type Class string

const (
	ClassRetinoid        Class = "retinoid"
	ClassAHA             Class = "aha"
	ClassBHA             Class = "bha"
	ClassPHA             Class = "pha"
	ClassBenzoylPeroxide Class = "benzoyl_peroxide"
	ClassVitaminC        Class = "vitamin_c"
	ClassCopperPeptide   Class = "copper_peptide"
)

// exfoliantClasses 是刷酸类别，"多重刷酸"规则统计其中同时出现的数量。
var exfoliantClasses = []Class{ClassAHA, ClassBHA, ClassPHA}

// classPatternSources 是类别 → 识别模式的数据表。
// 中英双语模式按类别共置，保证两种语言的规则结果一致；
// 新增类别/别名只改这张表，不碰检测逻辑。
// 短缩写（aha/bha/pha/vc）必须带词边界，避免 "alpha-arbutin" 这类误伤。
var classPatternSources = map[Class][]string{
	ClassRetinoid: {
		`retinol`, `retinal`, `tretinoin`, `adapalene`, `tazarotene`, `retinoate`,
		`视黄`, `维a`, `a醇`, `a酯`, `阿达帕林`,
	},
	ClassAHA: {
		`glycolic`, `lactic\s+acid`, `mandelic`, `\baha\b`,
		`果酸`, `乙醇酸`, `乳酸`, `杏仁酸`,
	},
	ClassBHA: {
		`salicylic`, `betaine\s+salicylate`, `\bbha\b`,
		`水杨酸`,
	},
	ClassPHA: {
		`gluconolactone`, `lactobionic`, `polyhydroxy`, `\bpha\b`,
		`葡糖酸内酯`, `多羟基酸`,
	},
	ClassBenzoylPeroxide: {
		`benzoyl\s+peroxide`, `\bbpo\b`,
		`过氧化苯甲酰`,
	},
	ClassVitaminC: {
		`ascorbic`, `ascorbyl`, `ascorbate`, `vitamin\s*c`, `\bvc\b`,
		`维c`, `维生素c`, `抗坏血酸`,
	},
	ClassCopperPeptide: {
		`copper\s+peptide`, `copper\s+tripeptide`, `ghk-cu`, `\bghk\b`,
		`蓝铜`, `铜肽`,
	},
}

// classPatterns 在启动时编译一次，之后只读。
var classPatterns = compilePatterns()

func compilePatterns() map[Class][]*regexp.Regexp {
	out := make(map[Class][]*regexp.Regexp, len(classPatternSources))
	for class, sources := range classPatternSources {
		compiled := make([]*regexp.Regexp, 0, len(sources))
		for _, src := range sources {
			compiled = append(compiled, regexp.MustCompile(`(?i)`+src))
		}
		out[class] = compiled
	}
	return out
}

// signalSet 记录"哪些类别出现过"以及每个类别首次出现的步骤下标。
// 步骤下标 -1 表示该类别来自待评估产品而非流程本身。
type signalSet struct {
	firstStep map[Class]int
}

func newSignalSet() *signalSet {
	return &signalSet{firstStep: make(map[Class]int)}
}

// mark 登记一次类别命中；同一类别只保留首次出现的位置。
func (s *signalSet) mark(class Class, stepIndex int) {
	if _, ok := s.firstStep[class]; !ok {
		s.firstStep[class] = stepIndex
	}
}

func (s *signalSet) has(class Class) bool {
	_, ok := s.firstStep[class]
	return ok
}

// stepOf 返回类别首次出现的流程步骤下标；来自待评估产品时返回 (0,false)。
func (s *signalSet) stepOf(class Class) (int, bool) {
	idx, ok := s.firstStep[class]
	if !ok || idx < 0 {
		return 0, false
	}
	return idx, true
}

// exfoliantCount 统计同时出现的刷酸类别数。
func (s *signalSet) exfoliantCount() int {
	n := 0
	for _, class := range exfoliantClasses {
		if s.has(class) {
			n++
		}
	}
	return n
}

// detectInto 对一组已规范化的活性成分字符串做类别检测，命中则登记进 signals。
func detectInto(signals *signalSet, actives []string, stepIndex int) {
	for _, active := range actives {
		for class, patterns := range classPatterns {
			if signals.has(class) {
				continue
			}
			for _, pattern := range patterns {
				if pattern.MatchString(active) {
					signals.mark(class, stepIndex)
					break
				}
			}
		}
	}
}
