package rules_test

import (
	"testing"

	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/rules"
	"github.com/mixgraph/mixgraph/substance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestRules(t *testing.T) *rules.MixtureRules {
	t.Helper()
	m, err := rules.Load("testdata/rules.json")
	require.NoError(t, err)
	return m
}

func TestCascadeHorseSemenAddyBattery(t *testing.T) {
	m := loadTestRules(t)

	set := effect.Empty

	set = m.Apply(substance.HorseSemen, set)
	assert.Equal(t, effect.NewSet(effect.LongFaced), set)

	set = m.Apply(substance.Addy, set)
	assert.Equal(t, effect.NewSet(effect.Electrifying, effect.ThoughtProvoking), set)

	set = m.Apply(substance.Battery, set)
	assert.Equal(t, effect.NewSet(effect.Euphoric, effect.ThoughtProvoking, effect.BrightEyed), set)

	set = m.Apply(substance.HorseSemen, set)
	assert.Equal(t, effect.NewSet(effect.Electrifying, effect.BrightEyed, effect.LongFaced, effect.Euphoric), set)
}

func TestCascadeMegaBeanCukeBananaHorseSemenIodine(t *testing.T) {
	m := loadTestRules(t)

	set := effect.Empty

	set = m.Apply(substance.MegaBean, set)
	assert.Equal(t, effect.NewSet(effect.Foggy), set)

	set = m.Apply(substance.Cuke, set)
	assert.Equal(t, effect.NewSet(effect.Cyclopean, effect.Energizing), set)

	set = m.Apply(substance.Banana, set)
	assert.Equal(t, effect.NewSet(effect.Energizing, effect.ThoughtProvoking, effect.Gingeritis), set)

	set = m.Apply(substance.HorseSemen, set)
	assert.Equal(t, effect.NewSet(effect.Energizing, effect.Electrifying, effect.Refreshing, effect.LongFaced), set)

	set = m.Apply(substance.Iodine, set)
	assert.Equal(t, effect.NewSet(effect.Energizing, effect.Electrifying, effect.ThoughtProvoking, effect.LongFaced, effect.Jennerising), set)
}

func TestPriceMultiplier(t *testing.T) {
	m := loadTestRules(t)

	set := effect.NewSet(
		effect.AntiGravity,
		effect.Glowing,
		effect.TropicThunder,
		effect.Zombifying,
		effect.Cyclopean,
		effect.Foggy,
		effect.BrightEyed,
	)

	price := int64(150.0*m.PriceMultiplier(set) + 0.5)
	assert.Equal(t, int64(657), price)
}

func TestParseSkipsUnknownSubstance(t *testing.T) {
	data := []byte(`{
		"effects": [{"substance": "Z", "effect": ["Fo"]}],
		"rules": [],
		"effect_price": {}
	}`)
	m, err := rules.Parse(data)
	require.NoError(t, err)

	// An unknown substance's inherent effects were never attached to
	// anything; every real substance still has no inherent effects.
	assert.Equal(t, effect.Empty, m.Apply(substance.Cuke, effect.Empty))
}

func TestParseRejectsUnknownEffectCode(t *testing.T) {
	data := []byte(`{
		"effects": [],
		"rules": [{
			"requires_substance": "A",
			"if_present": ["Zz"],
			"if_not_present": [],
			"replace": {}
		}],
		"effect_price": {}
	}`)
	_, err := rules.Parse(data)
	require.Error(t, err)
}

func TestParseRejectsCyclicRules(t *testing.T) {
	data := []byte(`{
		"effects": [],
		"rules": [
			{
				"requires_substance": "A",
				"if_present": ["Fo"],
				"if_not_present": [],
				"replace": {"Fo": "Cy"}
			},
			{
				"requires_substance": "A",
				"if_present": ["Cy"],
				"if_not_present": [],
				"replace": {"Cy": "Fo"}
			}
		],
		"effect_price": {}
	}`)
	_, err := rules.Parse(data)
	require.ErrorIs(t, err, rules.ErrCycle)
}
