package readability

// Structural patterns. All patterns in this file are compiled case-insensitively.
const (
	// WordPattern matches a run of letters, optionally joined to a second run by
	// one hyphen or apostrophe.
	WordPattern = `\b(\p{L}+(?:[-']\p{L}+)?)\b`

	// SentencePattern matches one sentence terminator run.
	SentencePattern = `[.?!]+`

	// VowelGroupPattern matches one run of vowels.
	VowelGroupPattern = `[aeiou]+`
)

// deductPatterns mark words that plain vowel-group counting overcounts by one.
var deductPatterns = []string{
	`e\b`,
	`ey\b`,
	`ed\b`,
	`ay\b`,
	`[kmrpbdtnvrw]es\b`,
	`ely\b`,
	`oy\b`,
	`cia`,
	`[aeilouy]le\b`,
	`tia[nl]?\b`,
	`tia([nl]s)?\b`,
	`[aeo]ym`,
	`eness\b`,
	`\bfore`,
	`ay[bclntrw]`,
	`ement`,
	`iles\b`,
	`[ao]les\b`,
	`eman\b`,
	`aying\b`,
	`oy[cln]`,
	`eful`,
	`\bey`,
	`geon`,
	`\bhome`,
	`eyn`,
	`ically`,
	`eless`,
	`sian\b`,
	`yles`,
	`\bwhite`,
	`eway`,
	`georg`,
	`lles\b`,
	`busine`,
	`illia`,
	`ules\b`,
	`\bhym`,
	`ryst`,
	`eyl`,
	`ehou`,
	`eyw`,
	`ekeep`,
	`people`,
	`every`,
	`\blife`,
	`giu`,
	`eyin`,
	`eout`,
	`oying\b`,
	`gues\b`,
	`\breine`,
	`geou`,
	`ques\b`,
	`vior`,
	`sewo`,
	`oseb`,
	`eyc`,
	`\bspace`,
	`\bstone`,
	`eover`,
	`ehol`,
	`iliar`,
	`estone`,
	`eyb`,
	`oyk`,
	`velan`,
	`piet`,
	`\bgia`,
	`somet`,
	`esvil`,
	`lyst`,
	`arriag`,
	`gior`,
}

// addPatterns mark words that plain vowel-group counting undercounts by one.
var addPatterns = []string{
	`y\b`,
	`ia`,
	`\bmc`,
	`[il]e\b`,
	`ted\b`,
	`ee\b`,
	`io\b`,
	`ded\b`,
	`[io]er\b`,
	`y[bckglmnrstwxv]`,
	`sms?\b`,
	`eo`,
	`[eior]ed\b`,
	`iol`,
	`\bhy`,
	`iu`,
	`s'`,
	`oe\b`,
	`iot`,
	`tua`,
	`aue`,
	`ea\b`,
	`iest\b`,
	`ios`,
	`yst`,
	`nte\b`,
	`ce's`,
	`ying\b`,
	`[bcdfgkopt]led\b`,
	`ciat`,
	`lement`,
	`typ`,
	`ly[dehops]`,
	`[drv]ious`,
	`z's\b`,
	`ae\b`,
	`io[mpr]`,
	`tre\b`,
	`ione\b`,
	`[cdehlorn]ue\b`,
	`se's`,
	`nua`,
	`x'`,
	`oing`,
	`yz`,
	`creat`,
	`lua`,
	`iod`,
	`\breass`,
	`eing\b`,
	`dua`,
	`[bdprz]ion`,
	`iello\b`,
	`oa\b`,
	`ge's`,
	`phys`,
	`eact`,
	`ioc`,
	`iog`,
	`scien`,
	`dys`,
	`uou`,
	`\brein`,
	`ienn`,
	`rya`,
	`bre\b`,
	`tke\b`,
	`ryd`,
	`sh's\b`,
	`rua`,
	`ryp`,
	`rient`,
	`uing`,
	`xual`,
	`eely\b`,
	`leman\b`,
	`fluen`,
	`he'`,
	`dre\b`,
	`iet`,
	`loui`,
	`dl\b`,
	`\bio`,
	`rys`,
	`tui`,
	`rye`,
	`\bcoe`,
	`\breali`,
	`ntes\b`,
	`ch'`,
	`mye`,
	`eeman\b`,
	`ryo`,
	`linea`,
	`theat`,
	`reapp`,
	`oers\b`,
	`tys`,
	`\bcyp`,
	`eemp`,
	`nys`,
	`aic\b`,
	`cua`,
	`tl\b`,
	`tres\b`,
	`ciano`,
	`lione`,
	`eand`,
	`\bdya`,
	`gyp`,
	`croat`,
	`heroi`,
	`rearr`,
	`eex`,
	`cre\b`,
	`oniou`,
	`eum\b`,
	`fred\b`,
	`dien`,
	`oua`,
	`oincid`,
	`coordi`,
	`nucle`,
	`nyd`,
	`\breen`,
	`\breun`,
	`bys`,
	`iale\b`,
	`ifiers`,
	`rean`,
	`pre\b`,
	`iore\b`,
	`-in\b`,
}
