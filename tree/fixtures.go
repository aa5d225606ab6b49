package tree

// DegenerateNine builds the 9-node fixture tree used by the solver's
// convergence tests (property 9, scenario S1): an OOP decision at the
// root choosing between Check and Bet, each answered by an IP Fold/Call
// decision, bottoming out in fixed terminal utilities, small enough that CFR+'s
// convergence to the tree's unique equilibrium can be checked by eye.
//
//	0 (OOP decision: Check, Bet)
//	├─ 1 (IP decision: Fold, Call)      [OOP Check]
//	│  ├─ 2 terminal  (+1)              [IP Fold]
//	│  └─ 3 (OOP decision: Check, Bet)  [IP Call]
//	│     ├─ 4 terminal (+5)            [OOP Check]
//	│     └─ 5 terminal (+2)            [OOP Bet]
//	└─ 6 (IP decision: Fold, Call)      [OOP Bet]
//	   ├─ 7 terminal (-5)               [IP Fold]
//	   └─ 8 terminal (-1)               [IP Call]
//
// Terminal utilities are IP-perspective per §3 and match exactly the
// values the specification fixes: {2:+1, 4:+5, 5:+2, 7:-5, 8:-1}.
func DegenerateNine() (*GameTree, map[int]float64) {
	nodes := make([]Node, 9)

	nodes[0] = Node{ID: 0, Kind: KindDecision, ParentID: -1, Children: []int{1, 6},
		Actor: OOP, Actions: []Action{{Kind: Check}, {Kind: Bet, Size: 1}}, Pot: 2, Stacks: [2]float64{10, 10}}

	nodes[1] = Node{ID: 1, Kind: KindDecision, ParentID: 0, Children: []int{2, 3},
		Actor: IP, Actions: []Action{{Kind: Fold}, {Kind: Call}}, Pot: 2, Stacks: [2]float64{10, 10}}
	nodes[2] = Node{ID: 2, Kind: KindTerminal, ParentID: 1, Pot: 2, Stacks: [2]float64{10, 10}, Folder: ptr(IP)}
	nodes[3] = Node{ID: 3, Kind: KindDecision, ParentID: 1, Children: []int{4, 5},
		Actor: OOP, Actions: []Action{{Kind: Check}, {Kind: Bet, Size: 2}}, Pot: 4, Stacks: [2]float64{9, 9}}
	nodes[4] = Node{ID: 4, Kind: KindTerminal, ParentID: 3, Pot: 4, Stacks: [2]float64{9, 9}}
	nodes[5] = Node{ID: 5, Kind: KindTerminal, ParentID: 3, Pot: 8, Stacks: [2]float64{7, 7}}

	nodes[6] = Node{ID: 6, Kind: KindDecision, ParentID: 0, Children: []int{7, 8},
		Actor: IP, Actions: []Action{{Kind: Fold}, {Kind: Call}}, Pot: 3, Stacks: [2]float64{10, 9}}
	nodes[7] = Node{ID: 7, Kind: KindTerminal, ParentID: 6, Pot: 3, Stacks: [2]float64{10, 9}, Folder: ptr(IP)}
	nodes[8] = Node{ID: 8, Kind: KindTerminal, ParentID: 6, Pot: 4, Stacks: [2]float64{9, 9}}

	t := &GameTree{Nodes: nodes}
	utilities := map[int]float64{2: 1, 4: 5, 5: 2, 7: -5, 8: -1}
	return t, utilities
}

// ChanceEleven builds an 11-node fixture tree that adds one chance node to
// DegenerateNine's shape, exercising §5's parallel chance-node fan-out
// (property 10, scenario S6): OOP's opening decision is itself reached
// through a two-outcome chance node (e.g. "river pairs the board" or
// not), each branch leading into its own copy of the smaller IP/OOP
// subgame with distinct terminal values.
//
//	0 (chance, 2 children)
//	├─ 1 (OOP decision: Check, Bet)     [chance outcome A]
//	│  ├─ 2 (IP decision: Fold, Call)
//	│  │  ├─ 3 terminal (+1)
//	│  │  └─ 4 terminal (+4)
//	│  └─ 5 (IP decision: Fold, Call)
//	│     ├─ 6 terminal (-3)
//	│     └─ 7 terminal (-1)
//	└─ 8 (OOP decision: Check, Bet)     [chance outcome B]
//	   ├─ 9 terminal (+2)
//	   └─ 10 terminal (-2)
func ChanceEleven() (*GameTree, map[int]float64) {
	nodes := make([]Node, 11)

	nodes[0] = Node{ID: 0, Kind: KindChance, ParentID: -1, Children: []int{1, 8}, Street: River, Pot: 2, Stacks: [2]float64{10, 10}}

	nodes[1] = Node{ID: 1, Kind: KindDecision, ParentID: 0, Children: []int{2, 5},
		Actor: OOP, Actions: []Action{{Kind: Check}, {Kind: Bet, Size: 1}}, Street: River, Pot: 2, Stacks: [2]float64{10, 10}}
	nodes[2] = Node{ID: 2, Kind: KindDecision, ParentID: 1, Children: []int{3, 4},
		Actor: IP, Actions: []Action{{Kind: Fold}, {Kind: Call}}, Street: River, Pot: 2, Stacks: [2]float64{10, 10}}
	nodes[3] = Node{ID: 3, Kind: KindTerminal, ParentID: 2, Pot: 2, Stacks: [2]float64{10, 10}, Folder: ptr(IP)}
	nodes[4] = Node{ID: 4, Kind: KindTerminal, ParentID: 2, Pot: 2, Stacks: [2]float64{10, 10}}
	nodes[5] = Node{ID: 5, Kind: KindDecision, ParentID: 1, Children: []int{6, 7},
		Actor: IP, Actions: []Action{{Kind: Fold}, {Kind: Call}}, Street: River, Pot: 4, Stacks: [2]float64{9, 9}}
	nodes[6] = Node{ID: 6, Kind: KindTerminal, ParentID: 5, Pot: 4, Stacks: [2]float64{9, 9}, Folder: ptr(IP)}
	nodes[7] = Node{ID: 7, Kind: KindTerminal, ParentID: 5, Pot: 4, Stacks: [2]float64{9, 9}}

	nodes[8] = Node{ID: 8, Kind: KindDecision, ParentID: 0, Children: []int{9, 10},
		Actor: OOP, Actions: []Action{{Kind: Check}, {Kind: Bet, Size: 1}}, Street: River, Pot: 2, Stacks: [2]float64{10, 10}}
	nodes[9] = Node{ID: 9, Kind: KindTerminal, ParentID: 8, Pot: 2, Stacks: [2]float64{10, 10}}
	nodes[10] = Node{ID: 10, Kind: KindTerminal, ParentID: 8, Pot: 2, Stacks: [2]float64{10, 10}}

	t := &GameTree{Nodes: nodes}
	utilities := map[int]float64{3: 1, 4: 4, 6: -3, 7: -1, 9: 2, 10: -2}
	return t, utilities
}

func ptr[T any](v T) *T {
	return &v
}
