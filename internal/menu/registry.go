package menu

// Node represents a menu entry definition within the registry tree.
type Node struct {
	ID          string
	Loader      Loader
	Action      Action
	Marks       Marker
	Children    map[string]*Node
	MultiSelect bool
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// BuildRegistry wires every menu entry to its loader and action. All
// entries hang directly off the root.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)
	ensure := func(id string) *Node {
		if node, ok := nodes[id]; ok {
			return node
		}
		node := &Node{ID: id, Children: make(map[string]*Node)}
		nodes[id] = node
		return node
	}

	root := ensure(IDRoot)
	root.Loader = func(ctx Context) ([]Item, error) { return RootItems(ctx), nil }

	categories := ensure(IDCategories)
	categories.Loader = loadCategoryMenu
	categories.Marks = markSelectedCategories
	categories.Action = CategoriesAction
	categories.MultiSelect = true

	towers := ensure(IDTowers)
	towers.Loader = loadTowerMenu
	towers.Marks = markSelectedTowers
	towers.Action = TowersAction
	towers.MultiSelect = true

	ensure(IDTeamSize).Action = TeamSizeAction
	ensure(IDGenerate).Action = GenerateAction
	ensure(IDReset).Action = ResetAction

	team := ensure(IDTeam)
	team.Action = TeamCopyAction
	team.MultiSelect = true

	for id, node := range nodes {
		if id == IDRoot || id == IDTeam {
			continue
		}
		root.Children[id] = node
	}

	return &Registry{root: root, nodes: nodes}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}
