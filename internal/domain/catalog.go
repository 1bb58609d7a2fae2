package domain

// catalog is the fixed 103-card element set. Mass group is the element's
// period; charges are the common ion magnitudes used by the ionization rule.
var catalog = []Card{
	{AtomicNumber: 1, Symbol: "H", MassGroup: 1, Family: FamilyNonmetal, PlusCharge: 1},
	{AtomicNumber: 2, Symbol: "He", MassGroup: 1, Family: FamilyNobleGas},
	{AtomicNumber: 3, Symbol: "Li", MassGroup: 2, Family: FamilyAlkali, PlusCharge: 1},
	{AtomicNumber: 4, Symbol: "Be", MassGroup: 2, Family: FamilyAlkalineEarth, PlusCharge: 2},
	{AtomicNumber: 5, Symbol: "B", MassGroup: 2, Family: FamilyMetalloid},
	{AtomicNumber: 6, Symbol: "C", MassGroup: 2, Family: FamilyNonmetal},
	{AtomicNumber: 7, Symbol: "N", MassGroup: 2, Family: FamilyNonmetal, MinusCharge: 3},
	{AtomicNumber: 8, Symbol: "O", MassGroup: 2, Family: FamilyNonmetal, MinusCharge: 2},
	{AtomicNumber: 9, Symbol: "F", MassGroup: 2, Family: FamilyHalogen, MinusCharge: 1},
	{AtomicNumber: 10, Symbol: "Ne", MassGroup: 2, Family: FamilyNobleGas},
	{AtomicNumber: 11, Symbol: "Na", MassGroup: 3, Family: FamilyAlkali, PlusCharge: 1},
	{AtomicNumber: 12, Symbol: "Mg", MassGroup: 3, Family: FamilyAlkalineEarth, PlusCharge: 2},
	{AtomicNumber: 13, Symbol: "Al", MassGroup: 3, Family: FamilyPostTransition, PlusCharge: 3},
	{AtomicNumber: 14, Symbol: "Si", MassGroup: 3, Family: FamilyMetalloid},
	{AtomicNumber: 15, Symbol: "P", MassGroup: 3, Family: FamilyNonmetal, MinusCharge: 3},
	{AtomicNumber: 16, Symbol: "S", MassGroup: 3, Family: FamilyNonmetal, MinusCharge: 2},
	{AtomicNumber: 17, Symbol: "Cl", MassGroup: 3, Family: FamilyHalogen, MinusCharge: 1},
	{AtomicNumber: 18, Symbol: "Ar", MassGroup: 3, Family: FamilyNobleGas},
	{AtomicNumber: 19, Symbol: "K", MassGroup: 4, Family: FamilyAlkali, PlusCharge: 1},
	{AtomicNumber: 20, Symbol: "Ca", MassGroup: 4, Family: FamilyAlkalineEarth, PlusCharge: 2},
	{AtomicNumber: 21, Symbol: "Sc", MassGroup: 4, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 22, Symbol: "Ti", MassGroup: 4, Family: FamilyTransition, PlusCharge: 4},
	{AtomicNumber: 23, Symbol: "V", MassGroup: 4, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 24, Symbol: "Cr", MassGroup: 4, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 25, Symbol: "Mn", MassGroup: 4, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 26, Symbol: "Fe", MassGroup: 4, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 27, Symbol: "Co", MassGroup: 4, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 28, Symbol: "Ni", MassGroup: 4, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 29, Symbol: "Cu", MassGroup: 4, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 30, Symbol: "Zn", MassGroup: 4, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 31, Symbol: "Ga", MassGroup: 4, Family: FamilyPostTransition, PlusCharge: 3},
	{AtomicNumber: 32, Symbol: "Ge", MassGroup: 4, Family: FamilyMetalloid},
	{AtomicNumber: 33, Symbol: "As", MassGroup: 4, Family: FamilyMetalloid, MinusCharge: 3},
	{AtomicNumber: 34, Symbol: "Se", MassGroup: 4, Family: FamilyNonmetal, MinusCharge: 2},
	{AtomicNumber: 35, Symbol: "Br", MassGroup: 4, Family: FamilyHalogen, MinusCharge: 1},
	{AtomicNumber: 36, Symbol: "Kr", MassGroup: 4, Family: FamilyNobleGas},
	{AtomicNumber: 37, Symbol: "Rb", MassGroup: 5, Family: FamilyAlkali, PlusCharge: 1},
	{AtomicNumber: 38, Symbol: "Sr", MassGroup: 5, Family: FamilyAlkalineEarth, PlusCharge: 2},
	{AtomicNumber: 39, Symbol: "Y", MassGroup: 5, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 40, Symbol: "Zr", MassGroup: 5, Family: FamilyTransition, PlusCharge: 4},
	{AtomicNumber: 41, Symbol: "Nb", MassGroup: 5, Family: FamilyTransition, PlusCharge: 5},
	{AtomicNumber: 42, Symbol: "Mo", MassGroup: 5, Family: FamilyTransition, PlusCharge: 6},
	{AtomicNumber: 43, Symbol: "Tc", MassGroup: 5, Family: FamilyTransition, Radioactive: true, PlusCharge: 4},
	{AtomicNumber: 44, Symbol: "Ru", MassGroup: 5, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 45, Symbol: "Rh", MassGroup: 5, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 46, Symbol: "Pd", MassGroup: 5, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 47, Symbol: "Ag", MassGroup: 5, Family: FamilyTransition, PlusCharge: 1},
	{AtomicNumber: 48, Symbol: "Cd", MassGroup: 5, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 49, Symbol: "In", MassGroup: 5, Family: FamilyPostTransition, PlusCharge: 3},
	{AtomicNumber: 50, Symbol: "Sn", MassGroup: 5, Family: FamilyPostTransition, PlusCharge: 2},
	{AtomicNumber: 51, Symbol: "Sb", MassGroup: 5, Family: FamilyMetalloid, PlusCharge: 3},
	{AtomicNumber: 52, Symbol: "Te", MassGroup: 5, Family: FamilyMetalloid, MinusCharge: 2},
	{AtomicNumber: 53, Symbol: "I", MassGroup: 5, Family: FamilyHalogen, MinusCharge: 1},
	{AtomicNumber: 54, Symbol: "Xe", MassGroup: 5, Family: FamilyNobleGas},
	{AtomicNumber: 55, Symbol: "Cs", MassGroup: 6, Family: FamilyAlkali, PlusCharge: 1},
	{AtomicNumber: 56, Symbol: "Ba", MassGroup: 6, Family: FamilyAlkalineEarth, PlusCharge: 2},
	{AtomicNumber: 57, Symbol: "La", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 58, Symbol: "Ce", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 59, Symbol: "Pr", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 60, Symbol: "Nd", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 61, Symbol: "Pm", MassGroup: 6, Family: FamilyLanthanide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 62, Symbol: "Sm", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 63, Symbol: "Eu", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 64, Symbol: "Gd", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 65, Symbol: "Tb", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 66, Symbol: "Dy", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 67, Symbol: "Ho", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 68, Symbol: "Er", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 69, Symbol: "Tm", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 70, Symbol: "Yb", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 71, Symbol: "Lu", MassGroup: 6, Family: FamilyLanthanide, PlusCharge: 3},
	{AtomicNumber: 72, Symbol: "Hf", MassGroup: 6, Family: FamilyTransition, PlusCharge: 4},
	{AtomicNumber: 73, Symbol: "Ta", MassGroup: 6, Family: FamilyTransition, PlusCharge: 5},
	{AtomicNumber: 74, Symbol: "W", MassGroup: 6, Family: FamilyTransition, PlusCharge: 6},
	{AtomicNumber: 75, Symbol: "Re", MassGroup: 6, Family: FamilyTransition, PlusCharge: 4},
	{AtomicNumber: 76, Symbol: "Os", MassGroup: 6, Family: FamilyTransition, PlusCharge: 4},
	{AtomicNumber: 77, Symbol: "Ir", MassGroup: 6, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 78, Symbol: "Pt", MassGroup: 6, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 79, Symbol: "Au", MassGroup: 6, Family: FamilyTransition, PlusCharge: 3},
	{AtomicNumber: 80, Symbol: "Hg", MassGroup: 6, Family: FamilyTransition, PlusCharge: 2},
	{AtomicNumber: 81, Symbol: "Tl", MassGroup: 6, Family: FamilyPostTransition, PlusCharge: 1},
	{AtomicNumber: 82, Symbol: "Pb", MassGroup: 6, Family: FamilyPostTransition, PlusCharge: 2},
	{AtomicNumber: 83, Symbol: "Bi", MassGroup: 6, Family: FamilyPostTransition, PlusCharge: 3},
	{AtomicNumber: 84, Symbol: "Po", MassGroup: 6, Family: FamilyPostTransition, Radioactive: true, PlusCharge: 2},
	{AtomicNumber: 85, Symbol: "At", MassGroup: 6, Family: FamilyHalogen, Radioactive: true, MinusCharge: 1},
	{AtomicNumber: 86, Symbol: "Rn", MassGroup: 6, Family: FamilyNobleGas, Radioactive: true},
	{AtomicNumber: 87, Symbol: "Fr", MassGroup: 7, Family: FamilyAlkali, Radioactive: true, PlusCharge: 1},
	{AtomicNumber: 88, Symbol: "Ra", MassGroup: 7, Family: FamilyAlkalineEarth, Radioactive: true, PlusCharge: 2},
	{AtomicNumber: 89, Symbol: "Ac", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 90, Symbol: "Th", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 4},
	{AtomicNumber: 91, Symbol: "Pa", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 5},
	{AtomicNumber: 92, Symbol: "U", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 6},
	{AtomicNumber: 93, Symbol: "Np", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 5},
	{AtomicNumber: 94, Symbol: "Pu", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 4},
	{AtomicNumber: 95, Symbol: "Am", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 96, Symbol: "Cm", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 97, Symbol: "Bk", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 98, Symbol: "Cf", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 99, Symbol: "Es", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 100, Symbol: "Fm", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 101, Symbol: "Md", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
	{AtomicNumber: 102, Symbol: "No", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 2},
	{AtomicNumber: 103, Symbol: "Lr", MassGroup: 7, Family: FamilyActinide, Radioactive: true, PlusCharge: 3},
}
