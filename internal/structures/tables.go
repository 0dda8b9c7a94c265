package structures

import "math"

// PayoutRange maps a draw number in [Low, High] (both inclusive) to a score
// delta and a user-facing message. Tables are scanned in declared order and
// the first matching range wins, so overlaps resolve deterministically.
type PayoutRange struct {
	Low     int
	High    int
	Delta   int
	Message string
}

// LevelRange maps a score/max ratio in [Low, High) to a level name. The scan
// is lower-inclusive, upper-exclusive, in declared order, first match wins.
type LevelRange struct {
	Low  float64
	High float64
	Name string
}

// UnknownLevel is returned when no range contains the ratio.
const UnknownLevel = "未知"

func DefaultPayoutTable() []PayoutRange {
	return []PayoutRange{
		{Low: 0, High: 0, Delta: -8, Message: "是布丁！【好感度-8】"},
		{Low: 1, High: 10, Delta: -4, Message: "是布丁！【好感度-4】"},
		{Low: 11, High: 20, Delta: -3, Message: "是布丁！【好感度-3】"},
		{Low: 21, High: 30, Delta: -2, Message: "是布丁！【好感度-2】"},
		{Low: 31, High: 40, Delta: -1, Message: "是布丁！【好感度-1】"},
		{Low: 41, High: 50, Delta: 0, Message: "是布丁！【好感度+0】"},
		{Low: 51, High: 60, Delta: 1, Message: "是布丁！【好感度+1】"},
		{Low: 61, High: 70, Delta: 2, Message: "是布丁！【好感度+2】"},
		{Low: 71, High: 80, Delta: 3, Message: "是布丁！【好感度+3】"},
		{Low: 81, High: 90, Delta: 4, Message: "是布丁！【好感度+4】"},
		{Low: 91, High: 99, Delta: 5, Message: "是布丁！【好感度+5】"},
		{Low: 100, High: 100, Delta: 10, Message: "是布丁！【好感度+10】"},
	}
}

func DefaultLevelTable() []LevelRange {
	return []LevelRange{
		{Low: math.Inf(-1), High: 0, Name: "疏离回避"},
		{Low: 0, High: 0.2, Name: "泛泛而识"},
		{Low: 0.2, High: 0.4, Name: "普通熟人"},
		{Low: 0.4, High: 0.6, Name: "可靠伙伴"},
		{Low: 0.6, High: 0.8, Name: "亲密伙伴"},
		{Low: 0.8, High: 1.0, Name: "信任挚友"},
		// Ratio exactly 1.0 lands here, not in 信任挚友.
		{Low: 1.0, High: math.Inf(1), Name: "灵魂共鸣"},
	}
}

// PayoutFor resolves a draw number through the table. The second return value
// is false when the table does not cover the number.
func PayoutFor(table []PayoutRange, result int) (PayoutRange, bool) {
	for _, r := range table {
		if result >= r.Low && result <= r.High {
			return r, true
		}
	}
	return PayoutRange{}, false
}

// LevelFor resolves a ratio to its level name, or UnknownLevel when the table
// does not cover it.
func LevelFor(table []LevelRange, ratio float64) string {
	for _, r := range table {
		if ratio >= r.Low && ratio < r.High {
			return r.Name
		}
	}
	return UnknownLevel
}
