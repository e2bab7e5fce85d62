package aa

// Substitutions maps non-standard residue names (modified amino acids,
// D-amino acids, etc.) to the standard residue they are treated as.
//
// It is read-only. Callers must not modify it.
var Substitutions = map[string]string{
	"2AS": "ASP", "3AH": "HIS", "5HP": "GLU", "ACL": "ARG", "AGM": "ARG",
	"AIB": "ALA", "ALM": "ALA", "ALO": "THR", "ALY": "LYS", "ARM": "ARG",
	"ASA": "ASP", "ASB": "ASP", "ASK": "ASP", "ASL": "ASP", "ASQ": "ASP",
	"AYA": "ALA", "BCS": "CYS", "BHD": "ASP", "BMT": "THR", "BNN": "ALA",
	"BUC": "CYS", "BUG": "LEU", "C5C": "CYS", "C6C": "CYS", "CAS": "CYS",
	"CCS": "CYS", "CEA": "CYS", "CGU": "GLU", "CHG": "ALA", "CLE": "LEU",
	"CME": "CYS", "CSD": "ALA", "CSO": "CYS", "CSP": "CYS", "CSS": "CYS",
	"CSW": "CYS", "CSX": "CYS", "CXM": "MET", "CY1": "CYS", "CY3": "CYS",
	"CYG": "CYS", "CYM": "CYS", "CYQ": "CYS", "DAH": "PHE", "DAL": "ALA",
	"DAR": "ARG", "DAS": "ASP", "DCY": "CYS", "DGL": "GLU", "DGN": "GLN",
	"DHA": "ALA", "DHI": "HIS", "DIL": "ILE", "DIV": "VAL", "DLE": "LEU",
	"DLY": "LYS", "DNP": "ALA", "DPN": "PHE", "DPR": "PRO", "DSN": "SER",
	"DSP": "ASP", "DTH": "THR", "DTR": "TRP", "DTY": "TYR", "DVA": "VAL",
	"EFC": "CYS", "FLA": "ALA", "FME": "MET", "GGL": "GLU", "GL3": "GLY",
	"GLZ": "GLY", "GMA": "GLU", "GSC": "GLY", "HAC": "ALA", "HAR": "ARG",
	"HIC": "HIS", "HIP": "HIS", "HMR": "ARG", "HPQ": "PHE", "HTR": "TRP",
	"HYP": "PRO", "IAS": "ASP", "IIL": "ILE", "IYR": "TYR", "KCX": "LYS",
	"LLP": "LYS", "LLY": "LYS", "LTR": "TRP", "LYM": "LYS", "LYZ": "LYS",
	"MAA": "ALA", "MEN": "ASN", "MHS": "HIS", "MIS": "SER", "MLE": "LEU",
	"MPQ": "GLY", "MSA": "GLY", "MSE": "MET", "MVA": "VAL", "NEM": "HIS",
	"NEP": "HIS", "NLE": "LEU", "NLN": "LEU", "NLP": "LEU", "NMC": "GLY",
	"OAS": "SER", "OCS": "CYS", "OMT": "MET", "PAQ": "TYR", "PCA": "GLU",
	"PEC": "CYS", "PHI": "PHE", "PHL": "PHE", "PR3": "CYS", "PRR": "ALA",
	"PTR": "TYR", "SAC": "SER", "SAR": "GLY", "SCH": "CYS", "SCS": "CYS",
	"SCY": "CYS", "SEL": "SER", "SEP": "SER", "SET": "SER", "SHC": "CYS",
	"SHR": "LYS", "SMC": "CYS", "SOC": "CYS", "STY": "TYR", "SVA": "SER",
	"TIH": "ALA", "TPL": "TRP", "TPO": "THR", "TPQ": "ALA", "TRG": "LYS",
	"TRO": "TRP", "TYB": "TYR", "TYQ": "TYR", "TYS": "TYR", "TYY": "TYR",
}
