package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claim-engine/internal/model"
)

func TestForwardPathUnverifiedEmail(t *testing.T) {
	flags := model.SessionFlags{EmailVerified: false}
	want := []model.StepID{
		model.StepIncome,
		model.StepDetails,
		model.StepDOB,
		model.StepEmail,
		model.StepRefund,
		model.StepAddress,
		model.StepIdentity,
		model.StepSummary,
		model.StepSignature,
		model.StepThankYou,
	}

	step := model.StepEmployment
	for _, expected := range want {
		to, ok := next(forward, step, flags)
		require.True(t, ok, "no forward edge from %s", step)
		assert.Equal(t, expected, to)
		step = to
	}

	_, ok := next(forward, step, flags)
	assert.False(t, ok, "thankyou must be terminal")
}

func TestVerifiedEmailSkipsEmailStep(t *testing.T) {
	verified := model.SessionFlags{EmailVerified: true}

	to, ok := next(forward, model.StepDOB, verified)
	require.True(t, ok)
	assert.Equal(t, model.StepRefund, to)

	back, ok := next(backward, model.StepRefund, verified)
	require.True(t, ok)
	assert.Equal(t, model.StepDOB, back, "retreat must skip email symmetrically")
}

func TestUnverifiedEmailRoutesThroughEmailStep(t *testing.T) {
	unverified := model.SessionFlags{EmailVerified: false}

	to, ok := next(forward, model.StepDOB, unverified)
	require.True(t, ok)
	assert.Equal(t, model.StepEmail, to)

	back, ok := next(backward, model.StepRefund, unverified)
	require.True(t, ok)
	assert.Equal(t, model.StepEmail, back)
}

// Every forward edge must round-trip: advancing and then retreating under the
// same flags lands back on the starting step.
func TestGraphSymmetry(t *testing.T) {
	for _, flags := range []model.SessionFlags{{EmailVerified: false}, {EmailVerified: true}} {
		for from := range forward {
			to, ok := next(forward, from, flags)
			require.True(t, ok, "no forward edge from %s", from)

			back, ok := next(backward, to, flags)
			require.True(t, ok, "no backward edge from %s", to)
			assert.Equal(t, from, back, "round trip from %s via %s (verified=%v)", from, to, flags.EmailVerified)
		}
	}
}

func TestFirstStepHasNoBackwardEdge(t *testing.T) {
	for _, flags := range []model.SessionFlags{{EmailVerified: false}, {EmailVerified: true}} {
		_, ok := next(backward, model.StepEmployment, flags)
		assert.False(t, ok)
	}
}
