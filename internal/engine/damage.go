package engine

import "fmt"

// MadnessHit is the damage one player takes from the round's Madness card.
type MadnessHit struct {
	Player   int      `json:"player"`
	Assigned int      `json:"assigned"` // before passives
	Final    int      `json:"final"`    // after passives, before shield
	Absorbed int      `json:"absorbed"` // taken by the shield pool
	LifeLoss int      `json:"life_loss"`
	Notes    []string `json:"notes,omitempty"`
}

// MadnessPlan is the full resolution of a Madness attack, computed without
// touching the game.
type MadnessPlan struct {
	CardValue int          `json:"card_value"`
	Reduction int          `json:"reduction"`
	Base      int          `json:"base"`
	Policy    DamagePolicy `json:"policy"`
	Hits      []MadnessHit `json:"hits"`
	Notes     []string     `json:"notes,omitempty"`
}

// PlanMadnessDamage resolves the active Madness card against the players.
func (g *Game) PlanMadnessDamage() MadnessPlan {
	var plan MadnessPlan
	if g.ActiveMadness == nil {
		plan.Policy = DamageNone
		plan.Notes = append(plan.Notes, "No Madness card is active. Nobody is attacked.")
		return plan
	}

	value := g.ActiveMadness.Value
	if g.Flags.MadnessNullified {
		value = 0
		plan.Notes = append(plan.Notes, "The Madness card was nullified by Total Repression.")
	}
	if g.RoundEffects[EffectFury] {
		value += 2
		plan.Notes = append(plan.Notes, fmt.Sprintf("Blind Fury raises the Madness to %d.", value))
	}
	plan.CardValue = value
	plan.Reduction = g.Tracks.ShieldReduction()
	plan.Base = max(0, value-plan.Reduction)
	plan.Notes = append(plan.Notes, fmt.Sprintf("Escudo level %d reduces damage by %d. Base damage: %d.",
		g.Tracks.Escudo, plan.Reduction, plan.Base))

	var assigned []seatDamage
	plan.Policy, assigned = g.targetMadness(plan.Base)
	switch plan.Policy {
	case DamageNone:
		plan.Notes = append(plan.Notes, "No Madness damage this round.")
	case DamageSplit:
		plan.Notes = append(plan.Notes, fmt.Sprintf("%s splits the damage with %s.",
			g.Players[assigned[0].seat].ID, g.Players[assigned[1].seat].ID))
	case DamageHighestScore:
		plan.Notes = append(plan.Notes, fmt.Sprintf("Madness strikes %s for the highest score.", g.Players[assigned[0].seat].ID))
	case DamageLowestLife:
		plan.Notes = append(plan.Notes, fmt.Sprintf("Madness strikes %s for the lowest life.", g.Players[assigned[0].seat].ID))
	case DamageFirstPlayerPlus:
		plan.Notes = append(plan.Notes, fmt.Sprintf("Madness strikes the first player, %s.", g.Players[assigned[0].seat].ID))
	case DamageAllPlus:
		plan.Notes = append(plan.Notes, "Madness strikes every player with increased damage.")
	default:
		plan.Notes = append(plan.Notes, "Madness strikes every player.")
	}

	for _, a := range assigned {
		plan.Hits = append(plan.Hits, g.planHit(a.seat, a.damage))
	}
	return plan
}

type seatDamage struct {
	seat   int
	damage int
}

// targetMadness selects who takes base damage. A committed split overrides the
// mental state's policy.
func (g *Game) targetMadness(base int) (DamagePolicy, []seatDamage) {
	if owner, partner, ok := g.splitPair(); ok {
		out := []seatDamage{
			{owner, (base + 1) / 2},
			{partner, base / 2},
		}
		for i := range g.Players {
			if i != owner && i != partner {
				out = append(out, seatDamage{i, base})
			}
		}
		return DamageSplit, out
	}

	policy := DamageDefault
	if g.ActiveMentalState != nil && g.ActiveMentalState.Damage != "" {
		policy = g.ActiveMentalState.Damage
	}

	switch policy {
	case DamageHighestScore:
		target := 0
		for i, p := range g.Players {
			if p.Score > g.Players[target].Score {
				target = i
			}
		}
		return policy, []seatDamage{{target, base}}
	case DamageLowestLife:
		target := 0
		for i, p := range g.Players {
			if p.Life < g.Players[target].Life {
				target = i
			}
		}
		return policy, []seatDamage{{target, base}}
	case DamageFirstPlayerPlus:
		return policy, []seatDamage{{0, base + 1}}
	case DamageAllPlus:
		return policy, g.everyone(base + 1)
	case DamageNone:
		return policy, nil
	default:
		return DamageDefault, g.everyone(base)
	}
}

func (g *Game) everyone(damage int) []seatDamage {
	out := make([]seatDamage, len(g.Players))
	for i := range g.Players {
		out[i] = seatDamage{i, damage}
	}
	return out
}

// splitPair finds the first committed damage split this round, in seat order.
func (g *Game) splitPair() (owner, partner int, ok bool) {
	g.hooks(func(seat int, a Ability) {
		h, splits := a.(SplitDamageHook)
		if ok || !splits {
			return
		}
		if p, committed := h.SplitPartner(g, seat); committed && p != seat && p >= 0 && p < len(g.Players) {
			owner, partner, ok = seat, p, true
		}
	})
	return owner, partner, ok
}

// planHit runs one target's passives and shield pool over assigned damage.
func (g *Game) planHit(seat, damage int) MadnessHit {
	p := g.Players[seat]
	hit := MadnessHit{Player: seat, Assigned: damage}
	if damage <= 0 {
		hit.Notes = append(hit.Notes, fmt.Sprintf("%s takes no Madness damage.", p.ID))
		return hit
	}

	stopped := false
	g.ownerHooks(seat, func(a Ability) {
		h, ok := a.(MadnessDamageHook)
		if !ok || stopped {
			return
		}
		adjusted, stop, note := h.ModifyMadnessDamage(g, seat, damage)
		damage = max(0, adjusted)
		stopped = stop
		if note != "" {
			hit.Notes = append(hit.Notes, note)
		}
	})
	hit.Final = damage

	hit.Absorbed = min(p.Shield, damage)
	if hit.Absorbed > 0 {
		hit.Notes = append(hit.Notes, fmt.Sprintf("%s used %d shield.", p.ID, hit.Absorbed))
	}
	hit.LifeLoss = damage - hit.Absorbed
	hit.Notes = append(hit.Notes, fmt.Sprintf("%s (%s) took %d Madness damage. Life: %d.",
		p.ID, p.Ajah, hit.LifeLoss, p.Life-hit.LifeLoss))
	return hit
}

func (g *Game) applyMadnessDamage(plan MadnessPlan) {
	for _, n := range plan.Notes {
		g.Logf("%s", n)
	}
	for _, hit := range plan.Hits {
		p := g.Players[hit.Player]
		p.Shield -= hit.Absorbed
		p.Life -= hit.LifeLoss
		for _, n := range hit.Notes {
			g.Logf("%s", n)
		}
	}
}

// Contribution is one non-standing player's share of the sanity damage.
type Contribution struct {
	Player     int      `json:"player"`
	Score      int      `json:"score"`
	Bonus      int      `json:"bonus"`
	Total      int      `json:"total"`
	ShieldGain int      `json:"shield_gain"`
	Notes      []string `json:"notes,omitempty"`
}

// SanityPlan is the round's sanity damage, computed without touching the game.
type SanityPlan struct {
	Contributions []Contribution `json:"contributions"`
	FlameBonus    int            `json:"flame_bonus"`
	Total         int            `json:"total"`
}

// PlanSanityDamage sums the scores of players who did not stand.
func (g *Game) PlanSanityDamage() SanityPlan {
	plan := SanityPlan{FlameBonus: g.Tracks.FlameBonus()}
	for i, p := range g.Players {
		if p.Standing {
			continue
		}
		c := Contribution{Player: i, Score: p.Score}
		g.hooks(func(owner int, a Ability) {
			if h, ok := a.(ContributionBonusHook); ok {
				bonus, note := h.ContributionBonus(g, owner, i)
				c.Bonus += bonus
				if note != "" {
					c.Notes = append(c.Notes, note)
				}
			}
		})
		c.Total = c.Score + c.Bonus
		g.ownerHooks(i, func(a Ability) {
			if h, ok := a.(ContributionShieldHook); ok {
				if gain := h.ShieldForContribution(g, i, c.Total); gain > 0 {
					c.ShieldGain += gain
					c.Notes = append(c.Notes, fmt.Sprintf("%s gains %d shield from %s.", p.ID, gain, a.ID()))
				}
			}
		})
		plan.Contributions = append(plan.Contributions, c)
		plan.Total += c.Total
	}
	plan.Total += plan.FlameBonus
	return plan
}

func (g *Game) applySanityDamage(plan SanityPlan) {
	for _, c := range plan.Contributions {
		g.Players[c.Player].Shield += c.ShieldGain
		for _, n := range c.Notes {
			g.Logf("%s", n)
		}
	}
	g.Logf("Chama level %d adds %d sanity damage.", g.Tracks.Chama, plan.FlameBonus)
	g.Sanity -= plan.Total
	g.Logf("Rand takes %d sanity damage. Remaining: %d.", plan.Total, g.Sanity)
}

// DamagePlayer deals ability damage to a seat through its shield pool. A fall
// to zero life ends the game.
func (g *Game) DamagePlayer(seat, amount int, source string) {
	p := g.Players[seat]
	if amount <= 0 {
		g.Logf("%s takes no damage from %s.", p.ID, source)
		return
	}
	absorbed := min(p.Shield, amount)
	if absorbed > 0 {
		p.Shield -= absorbed
		g.Logf("%s used %d shield.", p.ID, absorbed)
	}
	g.LoseLife(seat, amount-absorbed, source)
}

// LoseLife subtracts life directly, ignoring shields.
func (g *Game) LoseLife(seat, amount int, source string) {
	p := g.Players[seat]
	p.Life -= amount
	g.Logf("%s lost %d life to %s. Life: %d.", p.ID, amount, source, p.Life)
	if p.Life <= 0 && g.Phase != PhaseGameOver {
		g.Logf("%s has fallen. Madness wins.", p.ID)
		g.finish(WinnerMadness)
	}
}

// Heal restores life up to the starting maximum.
func (g *Game) Heal(seat, amount int) int {
	p := g.Players[seat]
	before := p.Life
	p.Life = min(g.Config.StartingLife, p.Life+amount)
	return p.Life - before
}
