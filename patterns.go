package chandas

// The built-in pattern tables. Every table is a priority list: lookups
// walk it in order and the first match wins, so more specific or more
// frequent patterns come first.
//
// Weight patterns are written over l/g, gaṇa patterns over the letters
// of GanaAbbreviate. Patterns are implicitly anchored at both ends.

// anustubhEven is the structure every even pāda of a śloka obeys:
// anceps at 1 and 8, syllables 2–3 never both light, 2–4 never glg,
// 5–7 always lgl.
const anustubhEven = `.(?:lgl|lgg|gll|ggl|ggg)lgl.`

// anustubhOdd lists the admissible odd pādas, pathyā first.
var anustubhOdd = []AnustubhSpec{
	{Name: "pathyā", Pattern: `.(?:lg|gl|gg).lgg.`},
	{Name: "na-vipulā", Pattern: `.(?:lg|gl|gg)glll.`},
	{Name: "bha-vipulā", Pattern: `.glggll.`},
	{Name: "ma-vipulā", Pattern: `.glgggg.`},
	{Name: "ra-vipulā", Pattern: `.(?:lg|gl|gg)gglg.`},
	{Name: "bha-vipulā (ma-gaṇa)", Pattern: `.ggggll.`},
}

// builtinSama lists fixed-pattern meters by pāda length. The last
// syllable of a pāda is anceps, hence the final character class.
var builtinSama = []SamaSpec{
	// 8: anuṣṭubh
	{Family: 8, Name: "vidyunmālā", Pattern: "mmg[lg]", Canonical: "mmgg"},
	{Family: 8, Name: "pramāṇikā", Pattern: "jrl[lg]", Canonical: "jrlg"},
	{Family: 8, Name: "samānikā", Pattern: "rjg[lg]", Canonical: "rjgl"},
	{Family: 8, Name: "māṇavaka", Pattern: "Btl[lg]", Canonical: "Btlg"},

	// 9: bṛhatī
	{Family: 9, Name: "bhujagaśiśubhṛtā", Pattern: "nn[mt]", Canonical: "nnm"},
	{Family: 9, Name: "maṇimadhya", Pattern: "Bm[sn]", Canonical: "Bms"},

	// 10: paṅkti
	{Family: 10, Name: "rukmavatī", Pattern: "Bms[lg]", Canonical: "Bmsg"},
	{Family: 10, Name: "mattā", Pattern: "mBs[lg]", Canonical: "mBsg"},

	// 11: triṣṭubh
	{Family: 11, Name: "indravajrā", Pattern: "ttjg[lg]", Canonical: "ttjgg", Upajati: true},
	{Family: 11, Name: "upendravajrā", Pattern: "jtjg[lg]", Canonical: "jtjgg", Upajati: true},
	{Family: 11, Name: "śālinī", Pattern: "mttg[lg]", Canonical: "mttgg", Upajati: true},
	{Family: 11, Name: "vātormī", Pattern: "mBtg[lg]", Canonical: "mBtgg", Upajati: true},
	{Family: 11, Name: "rathoddhatā", Pattern: "rnrl[lg]", Canonical: "rnrlg", Upajati: true},
	{Family: 11, Name: "svāgatā", Pattern: "rnBg[lg]", Canonical: "rnBgg", Upajati: true},
	{Family: 11, Name: "dodhaka", Pattern: "BBBg[lg]", Canonical: "BBBgg"},
	{Family: 11, Name: "bhramaravilasita", Pattern: "mBnl[lg]", Canonical: "mBnlg"},

	// 12: jagatī
	{Family: 12, Name: "vaṃśastha", Pattern: "jtj[rB]", Canonical: "jtjr", Upajati: true},
	{Family: 12, Name: "indravaṃśā", Pattern: "ttj[rB]", Canonical: "ttjr", Upajati: true},
	{Family: 12, Name: "toṭaka", Pattern: "sss[sn]", Canonical: "ssss"},
	{Family: 12, Name: "bhujaṅgaprayāta", Pattern: "yyy[yj]", Canonical: "yyyy"},
	{Family: 12, Name: "sragviṇī", Pattern: "rrr[rB]", Canonical: "rrrr"},
	{Family: 12, Name: "drutavilambita", Pattern: "nBB[rB]", Canonical: "nBBr"},
	{Family: 12, Name: "pramitākṣarā", Pattern: "sjs[sn]", Canonical: "sjss"},
	{Family: 12, Name: "vaiśvadevī", Pattern: "mmy[yj]", Canonical: "mmyy"},
	{Family: 12, Name: "kusumavicitrā", Pattern: "nyn[yj]", Canonical: "nyny"},
	{Family: 12, Name: "jaloddhatagati", Pattern: "jsj[sn]", Canonical: "jsjs"},

	// 13: atijagatī
	{Family: 13, Name: "praharṣiṇī", Pattern: "mnjr[lg]", Canonical: "mnjrg"},
	{Family: 13, Name: "rucirā", Pattern: "jBsj[lg]", Canonical: "jBsjg"},
	{Family: 13, Name: "mattamayūra", Pattern: "mtys[lg]", Canonical: "mtysg"},
	{Family: 13, Name: "mañjubhāṣiṇī", Pattern: "sjsj[lg]", Canonical: "sjsjg"},

	// 14: śakvarī
	{Family: 14, Name: "vasantatilakā", Pattern: "tBjjg[lg]", Canonical: "tBjjgg"},
	{Family: 14, Name: "asambādhā", Pattern: "mtnsg[lg]", Canonical: "mtnsgg"},
	{Family: 14, Name: "praharaṇakalikā", Pattern: "nnBnl[lg]", Canonical: "nnBnlg"},

	// 15: atiśakvarī
	{Family: 15, Name: "mālinī", Pattern: "nnmy[yj]", Canonical: "nnmyy"},

	// 16: aṣṭi
	{Family: 16, Name: "pañcacāmara", Pattern: "jrjrj[lg]", Canonical: "jrjrjg"},

	// 17: atyaṣṭi
	{Family: 17, Name: "mandākrāntā", Pattern: "mBnttg[lg]", Canonical: "mBnttgg"},
	{Family: 17, Name: "śikhariṇī", Pattern: "ymnsBl[lg]", Canonical: "ymnsBlg"},
	{Family: 17, Name: "pṛthvī", Pattern: "jsjsyl[lg]", Canonical: "jsjsylg"},
	{Family: 17, Name: "hariṇī", Pattern: "nsmrsl[lg]", Canonical: "nsmrslg"},
	{Family: 17, Name: "vaṃśapatrapatita", Pattern: "BrnBnl[lg]", Canonical: "BrnBnlg"},

	// 18: dhṛti
	{Family: 18, Name: "kusumitalatāvellitā", Pattern: "mtnyy[yj]", Canonical: "mtnyyy"},

	// 19: atidhṛti
	{Family: 19, Name: "śārdūlavikrīḍita", Pattern: "msjstt[lg]", Canonical: "msjsttg"},
	{Family: 19, Name: "meghavisphūrjitā", Pattern: "ymnsrr[lg]", Canonical: "ymnsrrg"},

	// 20: kṛti
	{Family: 20, Name: "suvadanā", Pattern: "mrBnyBl[lg]", Canonical: "mrBnyBlg"},

	// 21: prakṛti
	{Family: 21, Name: "sragdharā", Pattern: "mrBnyy[yj]", Canonical: "mrBnyyy"},

	// 22: ākṛti
	{Family: 22, Name: "madirā", Pattern: "BBBBBBB[lg]", Canonical: "BBBBBBBg"},
}

// builtinArdhasama lists meters whose odd and even pādas differ.
var builtinArdhasama = []ArdhasamaSpec{
	{Name: "puṣpitāgrā", Odd: "nnr[yj]", Even: "njjr[lg]", OddCanonical: "nnry", EvenCanonical: "njjrg"},
	{Name: "viyoginī", Odd: "ssj[lg]", Even: "sBrl[lg]", OddCanonical: "ssjg", EvenCanonical: "sBrlg"},
	{Name: "aparavaktra", Odd: "nnrl[lg]", Even: "njj[rB]", OddCanonical: "nnrlg", EvenCanonical: "njjr"},
	{Name: "mālabhāriṇī", Odd: "ssjg[lg]", Even: "sBr[yj]", OddCanonical: "ssjgg", EvenCanonical: "sBry"},
	{Name: "hariṇaplutā", Odd: "sssl[lg]", Even: "nBB[rB]", OddCanonical: "ssslg", EvenCanonical: "nBBr"},
	{Name: "vegavatī", Odd: "sss[lg]", Even: "BBBg[lg]", OddCanonical: "sssg", EvenCanonical: "BBBgg"},
}

// builtinJati lists mora-counted meters. Flexible patterns run over the
// comma-joined morae of the four pādas and admit one mora less wherever
// a final light syllable may be promoted; Standard is the reference count.
var builtinJati = []JatiSpec{
	{Name: "āryā", Flexible: `1[12],1[78],1[12],1[45]`, Standard: [4]int{12, 18, 12, 15}},
	{Name: "gīti", Flexible: `1[12],1[78],1[12],1[78]`, Standard: [4]int{12, 18, 12, 18}},
	{Name: "upagīti", Flexible: `1[12],1[45],1[12],1[45]`, Standard: [4]int{12, 15, 12, 15}},
	{Name: "udgīti", Flexible: `1[12],1[45],1[12],1[78]`, Standard: [4]int{12, 15, 12, 18}},
	{Name: "āryāgīti", Flexible: `1[12],(?:19|20),1[12],(?:19|20)`, Standard: [4]int{12, 20, 12, 20}},
	{Name: "vaitālīya", Flexible: `1[34],1[56],1[34],1[56]`, Standard: [4]int{14, 16, 14, 16}},
	{Name: "aupacchandasika", Flexible: `1[56],1[78],1[56],1[78]`, Standard: [4]int{16, 18, 16, 18}},
}
