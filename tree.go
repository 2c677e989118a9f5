package linsys

// treeBranchTurn is the turn applied when opening a branch; closing one
// applies the opposite turn after restoring the saved state.
const treeBranchTurn = 45

// FractalTree draws binary-tree traces. "0" and "1" are unit segments,
// brackets open and close branches: "[" saves the state and turns left,
// "]" restores it and turns right.
type FractalTree struct {
	TurtleState
}

// NewFractalTree returns a tree turtle at the origin, heading straight up.
func NewFractalTree() *FractalTree {
	return &FractalTree{TurtleState: TurtleState{Heading: 90}}
}

func (t *FractalTree) Feed(s Symbol) error {
	switch s {
	case '0', '1':
		t.Move(1)
		t.Record()
	case '[':
		t.Push()
		t.Turn(treeBranchTurn)
	case ']':
		if err := t.Pop(); err != nil {
			return err
		}
		t.Turn(-treeBranchTurn)
	}
	return nil
}
