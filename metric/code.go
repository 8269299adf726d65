package metric

// Index codes computed by the engine, one constant per index.
const (
	CNCADC   = "CNCADC"   // adversative connective incidence
	CNCAdd   = "CNCAdd"   // additive connective incidence
	CNCAll   = "CNCAll"   // all connective incidence
	CNCCaus  = "CNCCaus"  // causal connective incidence
	CNCLogic = "CNCLogic" // logical connective incidence
	CNCTemp  = "CNCTemp"  // temporal connective incidence
	CRFANP1  = "CRFANP1"  // anaphor overlap, adjacent sentences
	CRFANPa  = "CRFANPa"  // anaphor overlap, all sentence pairs
	CRFAO1   = "CRFAO1"   // argument overlap, adjacent sentences
	CRFAOa   = "CRFAOa"   // argument overlap, all sentence pairs
	CRFCWO1  = "CRFCWO1"  // content word overlap, adjacent sentences
	CRFCWO1d = "CRFCWO1d" // stddev of CRFCWO1
	CRFCWOa  = "CRFCWOa"  // content word overlap, all sentence pairs
	CRFCWOad = "CRFCWOad" // stddev of CRFCWOa
	CRFNO1   = "CRFNO1"   // noun overlap, adjacent sentences
	CRFNOa   = "CRFNOa"   // noun overlap, all sentence pairs
	CRFSO1   = "CRFSO1"   // stem overlap, adjacent sentences
	CRFSOa   = "CRFSOa"   // stem overlap, all sentence pairs
	DESPC    = "DESPC"    // paragraph count
	DESPL    = "DESPL"    // sentences per paragraph, mean
	DESPLd   = "DESPLd"   // sentences per paragraph, stddev
	DESSC    = "DESSC"    // sentence count
	DESSL    = "DESSL"    // words per sentence, mean
	DESSLd   = "DESSLd"   // words per sentence, stddev
	DESWC    = "DESWC"    // word count
	DESWLlt  = "DESWLlt"  // letters per word, mean
	DESWLltd = "DESWLltd" // letters per word, stddev
	DESWLsy  = "DESWLsy"  // syllables per word, mean
	DESWLsyd = "DESWLsyd" // syllables per word, stddev
	DRNEG    = "DRNEG"    // negation expression incidence
	DRNP     = "DRNP"     // noun phrase incidence
	DRVP     = "DRVP"     // verb phrase incidence
	LDTTRa   = "LDTTRa"   // type/token ratio, all words
	LDTTRcw  = "LDTTRcw"  // type/token ratio, content words
	RDFHGL   = "RDFHGL"   // Fernández-Huerta grade level
	SYNLE    = "SYNLE"    // words before main verb, mean
	SYNNP    = "SYNNP"    // modifiers per noun phrase, mean
	WRDADJ   = "WRDADJ"   // adjective incidence
	WRDADV   = "WRDADV"   // adverb incidence
	WRDNOUN  = "WRDNOUN"  // noun incidence
	WRDPRO   = "WRDPRO"   // pronoun incidence
	WRDPRP1p = "WRDPRP1p" // first person plural pronoun incidence
	WRDPRP1s = "WRDPRP1s" // first person singular pronoun incidence
	WRDPRP2p = "WRDPRP2p" // second person plural pronoun incidence
	WRDPRP2s = "WRDPRP2s" // second person singular pronoun incidence
	WRDPRP3p = "WRDPRP3p" // third person plural pronoun incidence
	WRDPRP3s = "WRDPRP3s" // third person singular pronoun incidence
	WRDVERB  = "WRDVERB"  // verb incidence
)

// Codes lists every index the engine computes, in code order. A complete
// Result carries exactly these keys.
var Codes = []string{
	CNCADC, CNCAdd, CNCAll, CNCCaus, CNCLogic, CNCTemp,
	CRFANP1, CRFANPa, CRFAO1, CRFAOa, CRFCWO1, CRFCWO1d, CRFCWOa, CRFCWOad,
	CRFNO1, CRFNOa, CRFSO1, CRFSOa,
	DESPC, DESPL, DESPLd, DESSC, DESSL, DESSLd, DESWC,
	DESWLlt, DESWLltd, DESWLsy, DESWLsyd,
	DRNEG, DRNP, DRVP,
	LDTTRa, LDTTRcw,
	RDFHGL,
	SYNLE, SYNNP,
	WRDADJ, WRDADV, WRDNOUN, WRDPRO,
	WRDPRP1p, WRDPRP1s, WRDPRP2p, WRDPRP2s, WRDPRP3p, WRDPRP3s,
	WRDVERB,
}

// Result maps index codes to their computed values. A Result is complete:
// the engine never returns a partial mapping.
type Result map[string]float64
