package life

import "contrib-life/pkg/core"

// Parameters describes the running configuration and generation counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	c := l.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.gen),
				core.IntParam("population", "Population", l.cur.Population()),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", c.Rows),
				core.IntParam("cols", "Cols", c.Cols),
				core.FloatParam("threshold", "Seed threshold", c.Threshold),
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				core.IntParam("cell", "Cell size", c.CellSize),
				core.StringParam("delay", "Tick delay", c.Delay.String()),
			},
		},
	}}
}
