package element

// catalog lists all 118 elements in atomic-number order, with IUPAC names and
// standard atomic weights (conventional values for elements with no stable
// isotope). Fields are Symbol, Name, Number, AtomicMass, Group, Period.
var catalog = [...]Element{
	{"H", "Hydrogen", 1, 1.008, 1, 1},
	{"He", "Helium", 2, 4.002602, 18, 1},
	{"Li", "Lithium", 3, 6.94, 1, 2},
	{"Be", "Beryllium", 4, 9.0121831, 2, 2},
	{"B", "Boron", 5, 10.81, 13, 2},
	{"C", "Carbon", 6, 12.011, 14, 2},
	{"N", "Nitrogen", 7, 14.007, 15, 2},
	{"O", "Oxygen", 8, 15.999, 16, 2},
	{"F", "Fluorine", 9, 18.998403163, 17, 2},
	{"Ne", "Neon", 10, 20.1797, 18, 2},
	{"Na", "Sodium", 11, 22.98976928, 1, 3},
	{"Mg", "Magnesium", 12, 24.305, 2, 3},
	{"Al", "Aluminium", 13, 26.9815385, 13, 3},
	{"Si", "Silicon", 14, 28.085, 14, 3},
	{"P", "Phosphorus", 15, 30.973762, 15, 3},
	{"S", "Sulfur", 16, 32.06, 16, 3},
	{"Cl", "Chlorine", 17, 35.45, 17, 3},
	{"Ar", "Argon", 18, 39.948, 18, 3},
	{"K", "Potassium", 19, 39.0983, 1, 4},
	{"Ca", "Calcium", 20, 40.078, 2, 4},
	{"Sc", "Scandium", 21, 44.955908, 3, 4},
	{"Ti", "Titanium", 22, 47.867, 4, 4},
	{"V", "Vanadium", 23, 50.9415, 5, 4},
	{"Cr", "Chromium", 24, 51.9961, 6, 4},
	{"Mn", "Manganese", 25, 54.938044, 7, 4},
	{"Fe", "Iron", 26, 55.845, 8, 4},
	{"Co", "Cobalt", 27, 58.933194, 9, 4},
	{"Ni", "Nickel", 28, 58.6934, 10, 4},
	{"Cu", "Copper", 29, 63.546, 11, 4},
	{"Zn", "Zinc", 30, 65.38, 12, 4},
	{"Ga", "Gallium", 31, 69.723, 13, 4},
	{"Ge", "Germanium", 32, 72.63, 14, 4},
	{"As", "Arsenic", 33, 74.921595, 15, 4},
	{"Se", "Selenium", 34, 78.971, 16, 4},
	{"Br", "Bromine", 35, 79.904, 17, 4},
	{"Kr", "Krypton", 36, 83.798, 18, 4},
	{"Rb", "Rubidium", 37, 85.4678, 1, 5},
	{"Sr", "Strontium", 38, 87.62, 2, 5},
	{"Y", "Yttrium", 39, 88.90584, 3, 5},
	{"Zr", "Zirconium", 40, 91.224, 4, 5},
	{"Nb", "Niobium", 41, 92.90637, 5, 5},
	{"Mo", "Molybdenum", 42, 95.95, 6, 5},
	{"Tc", "Technetium", 43, 98, 7, 5},
	{"Ru", "Ruthenium", 44, 101.07, 8, 5},
	{"Rh", "Rhodium", 45, 102.9055, 9, 5},
	{"Pd", "Palladium", 46, 106.42, 10, 5},
	{"Ag", "Silver", 47, 107.8682, 11, 5},
	{"Cd", "Cadmium", 48, 112.414, 12, 5},
	{"In", "Indium", 49, 114.818, 13, 5},
	{"Sn", "Tin", 50, 118.71, 14, 5},
	{"Sb", "Antimony", 51, 121.76, 15, 5},
	{"Te", "Tellurium", 52, 127.6, 16, 5},
	{"I", "Iodine", 53, 126.90447, 17, 5},
	{"Xe", "Xenon", 54, 131.293, 18, 5},
	{"Cs", "Caesium", 55, 132.90545196, 1, 6},
	{"Ba", "Barium", 56, 137.327, 2, 6},
	{"La", "Lanthanum", 57, 138.90547, 3, 6},
	{"Ce", "Cerium", 58, 140.116, 3, 6},
	{"Pr", "Praseodymium", 59, 140.90766, 3, 6},
	{"Nd", "Neodymium", 60, 144.242, 3, 6},
	{"Pm", "Promethium", 61, 145, 3, 6},
	{"Sm", "Samarium", 62, 150.36, 3, 6},
	{"Eu", "Europium", 63, 151.964, 3, 6},
	{"Gd", "Gadolinium", 64, 157.25, 3, 6},
	{"Tb", "Terbium", 65, 158.92535, 3, 6},
	{"Dy", "Dysprosium", 66, 162.5, 3, 6},
	{"Ho", "Holmium", 67, 164.93033, 3, 6},
	{"Er", "Erbium", 68, 167.259, 3, 6},
	{"Tm", "Thulium", 69, 168.93422, 3, 6},
	{"Yb", "Ytterbium", 70, 173.045, 3, 6},
	{"Lu", "Lutetium", 71, 174.9668, 3, 6},
	{"Hf", "Hafnium", 72, 178.49, 4, 6},
	{"Ta", "Tantalum", 73, 180.94788, 5, 6},
	{"W", "Tungsten", 74, 183.84, 6, 6},
	{"Re", "Rhenium", 75, 186.207, 7, 6},
	{"Os", "Osmium", 76, 190.23, 8, 6},
	{"Ir", "Iridium", 77, 192.217, 9, 6},
	{"Pt", "Platinum", 78, 195.084, 10, 6},
	{"Au", "Gold", 79, 196.966569, 11, 6},
	{"Hg", "Mercury", 80, 200.592, 12, 6},
	{"Tl", "Thallium", 81, 204.38, 13, 6},
	{"Pb", "Lead", 82, 207.2, 14, 6},
	{"Bi", "Bismuth", 83, 208.9804, 15, 6},
	{"Po", "Polonium", 84, 209, 16, 6},
	{"At", "Astatine", 85, 210, 17, 6},
	{"Rn", "Radon", 86, 222, 18, 6},
	{"Fr", "Francium", 87, 223, 1, 7},
	{"Ra", "Radium", 88, 226, 2, 7},
	{"Ac", "Actinium", 89, 227, 3, 7},
	{"Th", "Thorium", 90, 232.0377, 3, 7},
	{"Pa", "Protactinium", 91, 231.03588, 3, 7},
	{"U", "Uranium", 92, 238.02891, 3, 7},
	{"Np", "Neptunium", 93, 237, 3, 7},
	{"Pu", "Plutonium", 94, 244, 3, 7},
	{"Am", "Americium", 95, 243, 3, 7},
	{"Cm", "Curium", 96, 247, 3, 7},
	{"Bk", "Berkelium", 97, 247, 3, 7},
	{"Cf", "Californium", 98, 251, 3, 7},
	{"Es", "Einsteinium", 99, 252, 3, 7},
	{"Fm", "Fermium", 100, 257, 3, 7},
	{"Md", "Mendelevium", 101, 258, 3, 7},
	{"No", "Nobelium", 102, 259, 3, 7},
	{"Lr", "Lawrencium", 103, 266, 3, 7},
	{"Rf", "Rutherfordium", 104, 267, 4, 7},
	{"Db", "Dubnium", 105, 268, 5, 7},
	{"Sg", "Seaborgium", 106, 269, 6, 7},
	{"Bh", "Bohrium", 107, 270, 7, 7},
	{"Hs", "Hassium", 108, 269, 8, 7},
	{"Mt", "Meitnerium", 109, 278, 9, 7},
	{"Ds", "Darmstadtium", 110, 281, 10, 7},
	{"Rg", "Roentgenium", 111, 282, 11, 7},
	{"Cn", "Copernicium", 112, 285, 12, 7},
	{"Nh", "Nihonium", 113, 286, 13, 7},
	{"Fl", "Flerovium", 114, 289, 14, 7},
	{"Mc", "Moscovium", 115, 290, 15, 7},
	{"Lv", "Livermorium", 116, 293, 16, 7},
	{"Ts", "Tennessine", 117, 294, 17, 7},
	{"Og", "Oganesson", 118, 294, 18, 7},
}
