package workspace

import (
	"copycat/internal/randomness"
	"copycat/internal/slipnet"
)

// Salience accessors for the chooser functions.
var (
	IntraStringSalience = func(o Object) float64 { return o.Base().IntraStringSalience }
	InterStringSalience = func(o Object) float64 { return o.Base().InterStringSalience }
	TotalSalience       = func(o Object) float64 { return o.Base().TotalSalience }
	RelativeImportance  = func(o Object) float64 { return o.Base().RelativeImportance }
)

// chooseObjectFromList picks an object with probability proportional to
// its temperature-adjusted value.
func (w *Workspace) chooseObjectFromList(objects []Object, value func(Object) float64) Object {
	weights := make([]float64, len(objects))
	for i, o := range objects {
		weights[i] = w.temp.AdjustedValue(value(o))
	}
	chosen, _ := randomness.WeightedChoice(w.rand, objects, weights)
	return chosen
}

// ChooseUnmodifiedObject picks from the given objects, skipping those in
// the modified string.
func (w *Workspace) ChooseUnmodifiedObject(value func(Object) float64, in []Object) Object {
	var objects []Object
	for _, o := range in {
		if o.Base().String != w.Modified {
			objects = append(objects, o)
		}
	}
	return w.chooseObjectFromList(objects, value)
}

// ChooseNeighbor picks an object adjacent to source, weighted by
// intra-string salience.
func (w *Workspace) ChooseNeighbor(source Object) Object {
	var objects []Object
	for _, o := range w.Objects {
		if o.Base().Beside(source) {
			objects = append(objects, o)
		}
	}
	return w.chooseObjectFromList(objects, IntraStringSalience)
}

// ChooseDirectedNeighbor picks the object touching source on the given
// side, weighted by intra-string salience.
func (w *Workspace) ChooseDirectedNeighbor(source Object, direction *slipnet.Node) Object {
	base := source.Base()
	var objects []Object
	for _, o := range w.Objects {
		ob := o.Base()
		if ob.String != base.String {
			continue
		}
		if direction == w.net.Left {
			if base.LeftIndex == ob.RightIndex+1 {
				objects = append(objects, o)
			}
		} else if ob.LeftIndex == base.RightIndex+1 {
			objects = append(objects, o)
		}
	}
	return w.chooseObjectFromList(objects, IntraStringSalience)
}
