// Package lvroute is a shortest-route planner over pluggable road-network
// models.
//
// A model resolves coordinates to nodes and answers neighbour and distance
// queries; the planner runs A* between the nodes closest to a start and an
// end point and returns the path together with its real-world length.
//
// Packages:
//
//	astar/            — the planner: Model contract, options, search, results
//	roadmodel/        — typed road networks (k-d tree snapping, YAML loading)
//	gridgraph/        — cell grids as graphs, 4- or 8-connected
//	cmd/routeplanner/ — command-line front-end
//
// Quick example:
//
//	net, _ := roadmodel.LoadFile("town.yaml")
//	res, _ := astar.Route(net, 10, 10, 90, 90) // 0–100 map coordinates
//	fmt.Println(res.Status, res.NodeIDs(), res.Distance)
//
//	go get github.com/katalvlaran/lvroute
package lvroute
