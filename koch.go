package linsys

const kochTurn = 90

// KochCurve draws quadratic Koch traces. "F" is a unit segment, "+" and
// "-" turn 90 degrees left and right. The classic curve has no branching,
// but brackets still save and restore state (with no turn) so any balanced
// symbol stream stays valid.
type KochCurve struct {
	TurtleState
}

// NewKochCurve returns a Koch turtle at the origin heading right, with the
// origin already recorded as the first trace point.
func NewKochCurve() *KochCurve {
	k := &KochCurve{}
	k.Record()
	return k
}

func (k *KochCurve) Feed(s Symbol) error {
	switch s {
	case 'F':
		k.Move(1)
		k.Record()
	case '+':
		k.Turn(kochTurn)
	case '-':
		k.Turn(-kochTurn)
	case '[':
		k.Push()
	case ']':
		if err := k.Pop(); err != nil {
			return err
		}
	}
	return nil
}
