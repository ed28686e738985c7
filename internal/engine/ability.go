package engine

import "fmt"

// AbilityID identifies one of the 16 Ajah abilities.
type AbilityID string

const (
	AbilityPiercingGaze       AbilityID = "piercing_gaze"
	AbilitySubtleIntrigue     AbilityID = "subtle_intrigue"
	AbilityHealingTouch       AbilityID = "healing_touch"
	AbilityVitalShield        AbilityID = "vital_shield"
	AbilityRetaliationShield  AbilityID = "retaliation_shield"
	AbilityTotalRepression    AbilityID = "total_repression"
	AbilityBattleTactics      AbilityID = "battle_tactics"
	AbilityVigilantGuardian   AbilityID = "vigilant_guardian"
	AbilityFutureInfluence    AbilityID = "future_influence"
	AbilityDiplomaticSolution AbilityID = "diplomatic_solution"
	AbilityCorruptedWord      AbilityID = "corrupted_word"
	AbilityDarkOffering       AbilityID = "dark_offering"
	AbilityConcentratedStudy  AbilityID = "concentrated_study"
	AbilityMentalArchive      AbilityID = "mental_archive"
	AbilityLogicalRigor       AbilityID = "logical_rigor"
	AbilityMentalBarrier      AbilityID = "mental_barrier"
)

// AllAbilityIDs returns every ability in catalog order.
func AllAbilityIDs() []AbilityID {
	return []AbilityID{
		AbilityPiercingGaze, AbilitySubtleIntrigue,
		AbilityHealingTouch, AbilityVitalShield,
		AbilityRetaliationShield, AbilityTotalRepression,
		AbilityBattleTactics, AbilityVigilantGuardian,
		AbilityFutureInfluence, AbilityDiplomaticSolution,
		AbilityCorruptedWord, AbilityDarkOffering,
		AbilityConcentratedStudy, AbilityMentalArchive,
		AbilityLogicalRigor, AbilityMentalBarrier,
	}
}

// AbilityKind separates abilities invoked by command from always-on checks.
type AbilityKind int

const (
	KindActive AbilityKind = iota
	KindPassive
)

func (k AbilityKind) String() string {
	if k == KindPassive {
		return "Passive"
	}
	return "Active"
}

// Budget is how often an ability may be used.
type Budget int

const (
	BudgetUnlimited Budget = iota
	BudgetOncePerRound
	BudgetOncePerGame
)

// Unbounded is the UsesLeft value of abilities without a per-game limit.
const Unbounded = -1

// InitialUses returns the starting UsesLeft for a budget.
func (b Budget) InitialUses() int {
	if b == BudgetOncePerGame {
		return 1
	}
	return Unbounded
}

// AbilityUsage tracks one player's use of one ability.
type AbilityUsage struct {
	UsesLeft      int    `json:"uses_left"`
	UsedThisRound bool   `json:"used_this_round"`
	Target        Target `json:"target,omitempty"`
}

// Target is the payload an ability commits to until the phase that consumes it.
type Target interface {
	isTarget()
}

// PlayerTarget points at a seat.
type PlayerTarget struct {
	Player int `json:"player"`
}

// PartnerTarget names the second member of a pair.
type PartnerTarget struct {
	Partner int `json:"partner"`
}

// CardValueTarget names a card by value.
type CardValueTarget struct {
	Value int `json:"card_value"`
}

// EnhancementTarget points at a permanent enhancement by position.
type EnhancementTarget struct {
	Index int `json:"enhancement"`
}

func (PlayerTarget) isTarget()      {}
func (PartnerTarget) isTarget()     {}
func (CardValueTarget) isTarget()   {}
func (EnhancementTarget) isTarget() {}

// AbilityOptions carries the caller-resolved choices for an ability.
type AbilityOptions struct {
	TargetIndex      int   `json:"target_index"`
	CardValue        int   `json:"card_value"`
	EnhancementIndex int   `json:"enhancement_index"`
	CardIndices      []int `json:"card_indices,omitempty"`
}

// Declaration binds a passive ability's target while revealing cards.
type Declaration struct {
	Ability AbilityID      `json:"ability"`
	Options AbilityOptions `json:"options"`
}

// Ability defines an Ajah ability.
type Ability interface {
	ID() AbilityID
	Ajah() Ajah
	Kind() AbilityKind
	Budget() Budget
	// Phases lists the phases an active ability may be invoked in.
	Phases() []GamePhase
	// OwnTurn reports whether the owner must hold the turn pointer.
	OwnTurn() bool
	// Apply executes an active ability for the player at seat owner.
	Apply(g *Game, owner int, opts AbilityOptions) error
}

// MentalStateHook runs after a mental-state card is revealed.
type MentalStateHook interface {
	OnMentalState(g *Game, owner int)
}

// MadnessDamageHook adjusts madness damage dealt to its owner. Returning
// stop ends the chain and the returned damage is final.
type MadnessDamageHook interface {
	ModifyMadnessDamage(g *Game, owner, damage int) (adjusted int, stop bool, note string)
}

// ContributionBonusHook adds sanity damage to a contributing player.
type ContributionBonusHook interface {
	ContributionBonus(g *Game, owner, contributor int) (bonus int, note string)
}

// ContributionShieldHook grants shield to its owner after contributing.
type ContributionShieldHook interface {
	ShieldForContribution(g *Game, owner, contribution int) int
}

// StandHook runs after any player stands.
type StandHook interface {
	OnStand(g *Game, owner, stander int)
}

// EffectGuard shields a player from a round effect.
type EffectGuard interface {
	Guards(g *Game, owner, target int, effect EffectID) bool
}

// CleanupHook runs for its owner before revealed cards are discarded.
type CleanupHook interface {
	OnCleanup(g *Game, owner int)
}

// Declarer records a passive ability's target when its owner reveals cards.
type Declarer interface {
	Declare(g *Game, owner int, opts AbilityOptions) error
}

// AbilityRegistry maps ability IDs to their implementations.
type AbilityRegistry struct {
	abilities map[AbilityID]Ability
	byAjah    map[Ajah][]Ability
}

func NewAbilityRegistry() *AbilityRegistry {
	return &AbilityRegistry{
		abilities: make(map[AbilityID]Ability),
		byAjah:    make(map[Ajah][]Ability),
	}
}

// Register adds an ability. Unknown or duplicate IDs are rejected.
func (r *AbilityRegistry) Register(a Ability) error {
	known := false
	for _, id := range AllAbilityIDs() {
		if id == a.ID() {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown ability %q", a.ID())
	}
	if _, dup := r.abilities[a.ID()]; dup {
		return fmt.Errorf("ability %q already registered", a.ID())
	}
	r.abilities[a.ID()] = a
	r.byAjah[a.Ajah()] = append(r.byAjah[a.Ajah()], a)
	return nil
}

func (r *AbilityRegistry) Get(id AbilityID) (Ability, error) {
	a, ok := r.abilities[id]
	if !ok {
		return nil, fmt.Errorf("no ability registered for %q", id)
	}
	return a, nil
}

// ForAjah returns an Ajah's abilities in registration order.
func (r *AbilityRegistry) ForAjah(a Ajah) []Ability {
	return r.byAjah[a]
}

// hooks calls fn for every ability owned by every seated player, in seat order.
func (g *Game) hooks(fn func(owner int, a Ability)) {
	if g.Abilities == nil {
		return
	}
	for i, p := range g.Players {
		for _, a := range g.Abilities.ForAjah(p.Ajah) {
			fn(i, a)
		}
	}
}

// ownerHooks calls fn for the abilities of a single seat.
func (g *Game) ownerHooks(owner int, fn func(a Ability)) {
	if g.Abilities == nil {
		return
	}
	for _, a := range g.Abilities.ForAjah(g.Players[owner].Ajah) {
		fn(a)
	}
}

// Usage returns the usage record of an ability for a seat, or nil.
func (g *Game) Usage(seat int, id AbilityID) *AbilityUsage {
	if seat < 0 || seat >= len(g.Players) {
		return nil
	}
	return g.Players[seat].Abilities[id]
}

// available reports whether the budget of a usage still allows a use.
func available(a Ability, u *AbilityUsage) bool {
	if u == nil {
		return false
	}
	switch a.Budget() {
	case BudgetOncePerRound:
		return !u.UsedThisRound
	case BudgetOncePerGame:
		return u.UsesLeft > 0
	default:
		return true
	}
}

// consume charges one use against the budget.
func consume(a Ability, u *AbilityUsage) {
	if a.Budget() == BudgetOncePerGame && u.UsesLeft > 0 {
		u.UsesLeft--
	}
	u.UsedThisRound = true
}

// SplitDamageHook shares its owner's madness damage with a committed partner.
type SplitDamageHook interface {
	SplitPartner(g *Game, owner int) (partner int, ok bool)
}
