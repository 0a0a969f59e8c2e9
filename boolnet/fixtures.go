package boolnet

// Shipped reference networks. Both fixtures reproduce published models
// and are the canonical subjects of the randomizer test-suites and
// examples: Myeloid exercises every logic-table path, SPombe (having no
// table) exercises the ErrNoLogicTable paths.

// boolRule declares one node's update rule for tabulation: the ordered
// inputs and a closure over their states.
type boolRule struct {
	node   string
	inputs []string
	fn     func(s map[string]bool) bool
}

// tabulate evaluates each rule over all 2^k input conditions and
// collects the conditions that turn the node on.
func tabulate(rules []boolRule) []Row {
	rows := make([]Row, len(rules))
	for i, r := range rules {
		k := len(r.inputs)
		row := Row{Node: r.node, Inputs: append([]string(nil), r.inputs...)}
		for idx := 0; idx < 1<<uint(k); idx++ {
			cond := Pattern(idx, k)
			state := make(map[string]bool, k)
			for j, in := range r.inputs {
				state[in] = cond[j] == '1'
			}
			if r.fn(state) {
				row.On = append(row.On, cond)
			}
		}
		rows[i] = row
	}

	return rows
}

// Myeloid returns the 11-node myeloid differentiation logic network of
// Krumsiek et al. (2011), "Hierarchical Differentiation of Myeloid
// Progenitors Is Encoded in the Transcription Factor Network".
func Myeloid() *LogicNetwork {
	rules := []boolRule{
		{"GATA2", []string{"GATA2", "GATA1", "FOG1", "PU1"}, func(s map[string]bool) bool {
			return s["GATA2"] && !(s["GATA1"] && s["FOG1"]) && !s["PU1"]
		}},
		{"GATA1", []string{"GATA1", "GATA2", "Fli1", "PU1"}, func(s map[string]bool) bool {
			return (s["GATA1"] || s["GATA2"] || s["Fli1"]) && !s["PU1"]
		}},
		{"FOG1", []string{"GATA1"}, func(s map[string]bool) bool {
			return s["GATA1"]
		}},
		{"EKLF", []string{"GATA1", "Fli1"}, func(s map[string]bool) bool {
			return s["GATA1"] && !s["Fli1"]
		}},
		{"Fli1", []string{"GATA1", "EKLF"}, func(s map[string]bool) bool {
			return s["GATA1"] && !s["EKLF"]
		}},
		{"SCL", []string{"GATA1", "PU1"}, func(s map[string]bool) bool {
			return s["GATA1"] && !s["PU1"]
		}},
		{"CEBPa", []string{"CEBPa", "GATA1", "FOG1", "SCL"}, func(s map[string]bool) bool {
			return s["CEBPa"] && !(s["GATA1"] && s["FOG1"] && s["SCL"])
		}},
		{"PU1", []string{"CEBPa", "PU1", "GATA1", "GATA2"}, func(s map[string]bool) bool {
			return (s["CEBPa"] || s["PU1"]) && !(s["GATA1"] || s["GATA2"])
		}},
		{"cJun", []string{"PU1", "Gfi1"}, func(s map[string]bool) bool {
			return s["PU1"] && !s["Gfi1"]
		}},
		{"EgrNab", []string{"PU1", "cJun", "Gfi1"}, func(s map[string]bool) bool {
			return s["PU1"] && s["cJun"] && !s["Gfi1"]
		}},
		{"Gfi1", []string{"CEBPa", "EgrNab"}, func(s map[string]bool) bool {
			return s["CEBPa"] && !s["EgrNab"]
		}},
	}

	net, err := NewLogicNetwork(tabulate(rules))
	if err != nil {
		panic("boolnet: myeloid fixture: " + err.Error())
	}

	return net
}

// SPombe returns the 9-node fission-yeast cell-cycle threshold network
// of Davidich & Bornholdt (2008), "Boolean Network Model Predicts Cell
// Cycle Sequence of Fission Yeast". Weights[i][j] is the influence of
// node j on node i; SK, Slp1 and PP carry self-degradation loops.
func SPombe() *ThresholdNetwork {
	names := []string{
		"SK", "Cdc2_Cdc13", "Ste9", "Rum1", "Slp1",
		"Cdc2_Cdc13_active", "Wee1_Mik1", "Cdc25", "PP",
	}
	weights := [][]float64{
		//        SK  C2C13 Ste9 Rum1 Slp1 C2C13* W1M1 Cdc25  PP
		{-1, 0, 0, 0, 0, 0, 0, 0, 0},  // SK
		{0, 0, -1, -1, -1, 0, 0, 0, 0}, // Cdc2_Cdc13
		{-1, -1, 0, 0, 0, -1, 0, 0, 1}, // Ste9
		{-1, -1, 0, 0, 0, -1, 0, 0, 1}, // Rum1
		{0, 0, 0, 0, -1, 1, 0, 0, 0},  // Slp1
		{0, 0, -1, -1, -1, 0, -1, 1, 0}, // Cdc2_Cdc13_active
		{0, -1, 0, 0, 0, 0, 0, 0, 1},  // Wee1_Mik1
		{0, 1, 0, 0, 0, 0, 0, 0, -1},  // Cdc25
		{0, 0, 0, 0, 1, 0, 0, 0, -1},  // PP
	}
	thresholds := make([]float64, len(names))

	net, err := NewThresholdNetwork(names, weights, thresholds)
	if err != nil {
		panic("boolnet: s_pombe fixture: " + err.Error())
	}

	return net
}
