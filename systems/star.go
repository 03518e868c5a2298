package systems

import (
	"github.com/automoto/spiralstar/components"
	"github.com/automoto/spiralstar/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MoveStar advances a star along its spiral by step radians and marks it expired once
// it has turned past its limit
func MoveStar(s *components.StarData, step float64) {
	s.RotationApplied += step
	s.Position.X, s.Position.Y = gamemath.SpiralPosition(
		s.Origin.X, s.Origin.Y,
		s.Speed,
		s.RotationApplied,
		s.RotationSkew,
	)
	if s.RotationApplied > s.RotationLimit {
		s.Expired = true
	}
}

// UpdateStars moves every live star once, then removes the ones that expired.
// Removal happens after iteration so no star is moved twice in a tick.
func UpdateStars(ecs *ecs.ECS) {
	step := angularStep(ecs)
	var expired, grown []*donburi.Entry

	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		if star.Expired {
			expired = append(expired, e)
			return
		}
		MoveStar(star, step)
		if e.HasComponent(components.ScaleIn) && updateScaleIn(e) {
			grown = append(grown, e)
		}
		if star.Expired {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		e.Remove()
	}
	for _, e := range grown {
		if e.Valid() {
			e.RemoveComponent(components.ScaleIn)
		}
	}
}

// updateScaleIn advances the grow-in tween by one tick and reports whether it finished
func updateScaleIn(e *donburi.Entry) bool {
	si := components.ScaleIn.Get(e)
	scale, done := si.Tween.Update(1)
	si.Scale = float64(scale)
	if done {
		si.Scale = 1
	}
	return done
}

// StarScale is the draw scale of a star, below 1 while it is still growing in
func StarScale(e *donburi.Entry) float64 {
	if e.HasComponent(components.ScaleIn) {
		return components.ScaleIn.Get(e).Scale
	}
	return 1
}

func angularStep(ecs *ecs.ECS) float64 {
	settings, ok := Settings(ecs)
	if !ok {
		return defaultAngularStep
	}
	return settings.Config.AngularStep * settings.StepScale
}
