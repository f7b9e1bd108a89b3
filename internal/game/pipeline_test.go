package game

import (
	"dighack/internal/component"
	"dighack/internal/factory"
	"dighack/internal/gamemap"
	"dighack/internal/system"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBumpMovesPlayer(t *testing.T) {
	e := newTestEngine(t)
	out := e.HandleAction(BumpAction{DX: 1})
	assert.Equal(t, Performed, out.Kind)
	assert.Equal(t, component.Position{X: 3, Y: 2}, playerPos(e))
	assert.True(t, e.Map().IsVisible(10, 2), "FOV follows the player")
}

func TestBlockedMoveIsRejectedWithoutTurn(t *testing.T) {
	e := newTestEngine(t)
	e.world.Add(e.playerID, component.Position{X: 1, Y: 2})
	spawn(t, e, factory.Orc, 2, 2) // adjacent, would attack if a turn passed

	out := e.HandleAction(MovementAction{DX: -1})
	assert.Equal(t, Rejected, out.Kind)
	assert.Equal(t, "That way is blocked.", out.Message)
	assert.Equal(t, TagImpossible, lastMessage(e).Tag)
	assert.Equal(t, factory.PlayerHP, fighter(e, e.playerID).HP)
}

func TestMovementIntoMonsterIsBlocked(t *testing.T) {
	e := newTestEngine(t)
	spawn(t, e, factory.Orc, 3, 2)
	out := e.HandleAction(MovementAction{DX: 1})
	assert.Equal(t, Rejected, out.Kind)
	assert.Equal(t, "That way is blocked.", out.Message)
}

func TestMeleeWithNothingThere(t *testing.T) {
	e := newTestEngine(t)
	out := e.HandleAction(MeleeAction{DX: 1})
	assert.Equal(t, Rejected, out.Kind)
	assert.Equal(t, "Nothing to attack.", out.Message)
}

func TestBumpAttacksAndMonsterStrikesBack(t *testing.T) {
	e := newTestEngine(t)
	orc := spawn(t, e, factory.Orc, 3, 2)

	out := e.HandleAction(BumpAction{DX: 1})
	require.Equal(t, Performed, out.Kind)

	assert.Equal(t, 6, fighter(e, orc).HP)
	assert.Equal(t, 28, fighter(e, e.playerID).HP)
	assert.True(t, hasMessage(e, "Player attacks Orc for 4 hit points."))
	assert.True(t, hasMessage(e, "Orc attacks Player for 2 hit points."))
	assert.Equal(t, component.Position{X: 2, Y: 2}, playerPos(e), "attacking does not move")
}

func TestZeroDamageMessage(t *testing.T) {
	e := newTestEngine(t)
	troll := spawn(t, e, factory.Troll, 3, 2)
	f := fighter(e, troll)
	f.BaseDefense = 10
	e.world.Add(troll, f)

	e.HandleAction(BumpAction{DX: 1})
	assert.True(t, hasMessage(e, "Player attacks Troll but does no damage."))
	assert.Equal(t, 16, fighter(e, troll).HP)
}

func TestKillAwardsXPAndLeavesCorpse(t *testing.T) {
	e := newTestEngine(t)
	orc := spawn(t, e, factory.Orc, 3, 2)
	setHP(e, orc, 4)

	out := e.HandleAction(BumpAction{DX: 1})
	require.Equal(t, Performed, out.Kind)

	assert.True(t, hasMessage(e, "Orc is dead!"))
	lv := e.world.Get(e.playerID, component.CLevel).(component.Level)
	assert.Equal(t, 35, lv.XP)
	assert.False(t, e.world.Has(orc, component.CAI))
	assert.False(t, e.world.Has(orc, component.CTagBlocking))
	assert.Equal(t, factory.PlayerHP, fighter(e, e.playerID).HP, "a corpse does not attack")

	// The corpse no longer blocks.
	out = e.HandleAction(BumpAction{DX: 1})
	assert.Equal(t, Performed, out.Kind)
	assert.Equal(t, component.Position{X: 3, Y: 2}, playerPos(e))
}

func TestMonsterKillAwardsXPToKiller(t *testing.T) {
	e := newTestEngine(t)
	troll := spawn(t, e, factory.Troll, 10, 5)
	orc := spawn(t, e, factory.Orc, 11, 5)
	setHP(e, orc, 1)

	require.NoError(t, MeleeAction{Actor: troll, DX: 1}.Perform(e))

	assert.False(t, fighter(e, orc).Alive())
	assert.True(t, hasMessage(e, "Orc is dead!"))
	assert.Equal(t, 35, e.world.Get(troll, component.CLevel).(component.Level).XP)
	assert.Equal(t, 0, e.world.Get(e.playerID, component.CLevel).(component.Level).XP)
	assert.False(t, hasMessage(e, "experience points"))
}

func TestAIActsInSpawnOrder(t *testing.T) {
	e := newTestEngine(t)
	spawn(t, e, factory.Troll, 3, 2)
	spawn(t, e, factory.Orc, 3, 3)

	out := e.HandleAction(WaitAction{})
	require.Equal(t, Performed, out.Kind)

	assert.Equal(t, 25, fighter(e, e.playerID).HP)
	troll := messageIndex(e, "Troll attacks Player")
	orc := messageIndex(e, "Orc attacks Player")
	require.GreaterOrEqual(t, troll, 0)
	require.GreaterOrEqual(t, orc, 0)
	assert.Less(t, troll, orc)
}

func TestHostileWaitsOutOfSight(t *testing.T) {
	e := newTestEngine(t)
	orc := spawn(t, e, factory.Orc, 17, 7)
	require.False(t, e.Map().IsVisible(17, 7))

	e.HandleAction(WaitAction{})
	assert.Equal(t, component.Position{X: 17, Y: 7}, e.world.Get(orc, component.CPosition))
}

func TestHostileFollowsRememberedPath(t *testing.T) {
	e := newTestEngine(t)
	orc := spawn(t, e, factory.Orc, 7, 2)

	e.HandleAction(WaitAction{})
	ai := e.world.Get(orc, component.CAI).(component.AI)
	require.Len(t, ai.Path, 4)
	next := ai.Path[0]

	// Out of view, the orc keeps walking the route it planned.
	pos := e.world.Get(orc, component.CPosition).(component.Position)
	e.gmap.Visible[pos.Y][pos.X] = false
	e.HandleAction(WaitAction{})
	assert.Equal(t, next, e.world.Get(orc, component.CPosition))
	assert.Len(t, e.world.Get(orc, component.CAI).(component.AI).Path, 3)
}

func TestHostileDropsBrokenPath(t *testing.T) {
	e := newTestEngine(t)
	orc := spawn(t, e, factory.Orc, 17, 7)
	require.False(t, e.Map().IsVisible(17, 7))
	e.world.Add(orc, component.AI{Path: []component.Position{{X: 10, Y: 2}}})

	e.HandleAction(WaitAction{})
	assert.Equal(t, component.Position{X: 17, Y: 7}, e.world.Get(orc, component.CPosition))
	assert.Nil(t, e.world.Get(orc, component.CAI).(component.AI).Path)
}

func TestHostileApproachesWhenVisible(t *testing.T) {
	e := newTestEngine(t)
	orc := spawn(t, e, factory.Orc, 6, 2)

	e.HandleAction(WaitAction{})
	pos := e.world.Get(orc, component.CPosition).(component.Position)
	assert.Equal(t, 3, system.Chebyshev(pos, playerPos(e)))
}

func TestAIRejectionsAreSilent(t *testing.T) {
	e := newTestEngine(t)
	// Wall in a confused orc so every stumble is blocked.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				e.gmap.Set(10+dx, 5+dy, gamemap.MakeWall())
			}
		}
	}
	orc := spawn(t, e, factory.Orc, 10, 5)
	require.True(t, system.Confuse(e.world, orc, 5))
	before := e.log.Len()

	out := e.HandleAction(WaitAction{})
	assert.Equal(t, Performed, out.Kind)
	assert.Equal(t, before, e.log.Len(), "AI rejections must not be logged")
	assert.Equal(t, component.Position{X: 10, Y: 5}, e.world.Get(orc, component.CPosition))
	assert.Equal(t, 4, e.world.Get(orc, component.CAI).(component.AI).TurnsRemaining)
}

func TestConfusionWearsOff(t *testing.T) {
	e := newTestEngine(t)
	orc := spawn(t, e, factory.Orc, 15, 7)
	require.True(t, system.Confuse(e.world, orc, 1))

	e.HandleAction(WaitAction{})
	e.HandleAction(WaitAction{})
	assert.True(t, hasMessage(e, "The Orc is no longer confused."))
	assert.False(t, system.IsConfused(e.world, orc))
}

func TestPlayerDeathEndsSession(t *testing.T) {
	e := newTestEngine(t)
	spawn(t, e, factory.Troll, 3, 2)
	setHP(e, e.playerID, 1)

	out := e.HandleAction(WaitAction{})
	assert.Equal(t, Performed, out.Kind)
	assert.True(t, out.Dead)
	assert.Equal(t, StateDead, e.State())
	assert.True(t, hasMessage(e, "You died!"))
	assert.Equal(t, 0, fighter(e, e.playerID).HP)

	out = e.HandleAction(WaitAction{})
	assert.Equal(t, Rejected, out.Kind)
	assert.Equal(t, "You are dead.", out.Message)
	assert.True(t, out.Dead)
}

func TestLevelUpFlow(t *testing.T) {
	e := newTestEngine(t)
	assert.Error(t, e.LevelUp(ChooseStrength), "nothing pending yet")
	assert.Equal(t, TagInvalid, lastMessage(e).Tag)

	system.AddXP(e.world, e.playerID, 200)
	out := e.HandleAction(WaitAction{})
	require.True(t, out.LevelUp)

	var inv *Invalid
	require.ErrorAs(t, e.LevelUp(LevelChoice(42)), &inv)
	assert.Equal(t, "Invalid entry.", inv.Message)

	require.NoError(t, e.LevelUp(ChooseStrength))
	assert.Equal(t, 5, system.Power(e.world, e.playerID))
	assert.Equal(t, 2, e.world.Get(e.playerID, component.CLevel).(component.Level).Current)
	assert.False(t, e.LevelUpPending())
	assert.Error(t, e.LevelUp(ChooseAgility), "only one choice per level")
}

func TestLevelUpConstitution(t *testing.T) {
	e := newTestEngine(t)
	system.AddXP(e.world, e.playerID, 200)
	require.True(t, e.HandleAction(WaitAction{}).LevelUp)
	require.NoError(t, e.LevelUp(ChooseConstitution))
	f := fighter(e, e.playerID)
	assert.Equal(t, 50, f.MaxHP)
	assert.Equal(t, 50, f.HP)
}

func TestLevelUpNeedsTurn(t *testing.T) {
	e := newTestEngine(t)
	system.AddXP(e.world, e.playerID, 200)
	assert.False(t, e.LevelUpPending(), "offered only at the end of a turn")
	var inv *Invalid
	assert.ErrorAs(t, e.LevelUp(ChooseStrength), &inv)
}

func TestLevelUpOncePerTurn(t *testing.T) {
	e := newTestEngine(t)
	system.AddXP(e.world, e.playerID, 2000)

	require.True(t, e.HandleAction(WaitAction{}).LevelUp)
	require.NoError(t, e.LevelUp(ChooseStrength))
	assert.False(t, e.LevelUpPending())

	var inv *Invalid
	require.ErrorAs(t, e.LevelUp(ChooseStrength), &inv)
	assert.Equal(t, "You have no level-up pending.", inv.Message)
	assert.Equal(t, 5, system.Power(e.world, e.playerID))

	// The banked XP is offered again after the next turn.
	require.True(t, e.HandleAction(WaitAction{}).LevelUp)
	require.NoError(t, e.LevelUp(ChooseStrength))
	assert.Equal(t, 6, system.Power(e.world, e.playerID))
	assert.Equal(t, 3, e.world.Get(e.playerID, component.CLevel).(component.Level).Current)
}

type brokenAction struct{}

func (brokenAction) Perform(*Engine) error { return errors.New("disk on fire") }

func TestUnexpectedErrorFails(t *testing.T) {
	e := newTestEngine(t)
	out := e.HandleAction(brokenAction{})
	assert.Equal(t, Failed, out.Kind)
	require.Error(t, out.Err)
	assert.Contains(t, out.Err.Error(), "disk on fire")
	assert.Equal(t, TagError, lastMessage(e).Tag)
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "performed", Performed.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "failed", Failed.String())
}
