package euchre

// SettlementResult reports how a completed hand scored.
//
// 标准计分表:
//   - 叫牌方 3-4 墩: 1 分
//   - 叫牌方 5 墩 (march): 2 分
//   - 单打 5 墩: 4 分
//   - 叫牌方不足 3 墩 (euchred): 防守方得 2 分
type SettlementResult struct {
	CallingTeam     TeamID
	WinningTeam     TeamID
	CallingTricks   int
	DefendingTricks int
	Points          int

	March   bool
	Euchred bool
	Loner   bool // the hand was played alone (scoring bonus applies on a march)
}

func (r *SettlementResult) winnerTricks() int {
	if r.WinningTeam == r.CallingTeam {
		return r.CallingTricks
	}
	return r.DefendingTricks
}

func settle(seating *Seating, h *Hand) (*SettlementResult, error) {
	calling := h.trumpTeam
	defending := seating.teams[1-calling.ID]

	result := &SettlementResult{
		CallingTeam:     calling.ID,
		CallingTricks:   calling.tricks,
		DefendingTricks: defending.tricks,
		Loner:           h.loner != nil,
	}
	if calling.tricks+defending.tricks != HandSize {
		return nil, ErrInvalidState("trick counters do not sum to a full hand")
	}

	switch {
	case calling.tricks == HandSize:
		result.WinningTeam = calling.ID
		result.March = true
		if result.Loner {
			result.Points = 4
		} else {
			result.Points = 2
		}
	case calling.tricks >= 3:
		result.WinningTeam = calling.ID
		result.Points = 1
	default:
		// 被 euchre：防守方得 2 分
		result.WinningTeam = defending.ID
		result.Euchred = true
		result.Points = 2
	}
	return result, nil
}
