package universe

import "sort"

//Evaluator writes row y of the next generation of src into dst
//dst never aliases any row of src
type Evaluator func(src Area, dst []Cell, y int)

//DefEngine is the evaluator used when none or an unknown one is requested
const DefEngine = "bounded"

var evaluators = map[string]Evaluator{
	"bounded": boundedRow,
	"masked":  maskedRow,
}

//EvaluatorByName returns the registered evaluator
func EvaluatorByName(name string) (Evaluator, bool) {
	e, ok := evaluators[name]
	return e, ok
}

//EngineNames returns the names of the registered evaluators, sorted
func EngineNames() []string {
	names := make([]string, 0, len(evaluators))
	for k := range evaluators {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//nextState is the Conway rule: born with 3 neighbours, survives with 2 or 3
func nextState(alive Cell, liveNeighbours uint8) Cell {
	return liveNeighbours == 3 || (alive && liveNeighbours == 2)
}
