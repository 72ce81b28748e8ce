package reassemble

import "go.uber.org/zap"

// SnapEvaluator decides, at release time, whether a part is back home.
type SnapEvaluator struct {
	parts    *PartRegistry
	distance float64
	log      *zap.Logger
}

// NewSnapEvaluator creates an evaluator with the given snap distance.
func NewSnapEvaluator(parts *PartRegistry, distance float64, log *zap.Logger) *SnapEvaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &SnapEvaluator{parts: parts, distance: distance, log: log}
}

// Distance returns the snap tolerance.
func (s *SnapEvaluator) Distance() float64 {
	return s.distance
}

// Evaluate snaps part i to its original pose and marks it assembled when it
// lies strictly within the snap distance. Otherwise the part is marked
// unassembled, even if it was assembled before.
func (s *SnapEvaluator) Evaluate(i int) bool {
	dist := s.parts.Current(i).Sub(s.parts.Original(i)).Len()
	if dist < s.distance {
		s.parts.SetCurrent(i, s.parts.Original(i))
		s.parts.SetAssembled(i, true)
		s.log.Info("part snapped", zap.String("part", s.parts.Name(i)), zap.Float64("dist", dist))
		return true
	}
	s.parts.SetAssembled(i, false)
	s.log.Debug("part released away from home", zap.String("part", s.parts.Name(i)), zap.Float64("dist", dist))
	return false
}
