package prompt

// generalSeedWords is the default seed pool: evocative, setting-neutral words.
var generalSeedWords = []string{
	"abyss", "labyrinth", "enigma", "silence", "echo", "whisper", "tremor",
	"fracture", "resonance", "shadow", "bloom", "wither", "rust", "glow",
	"cascade", "dissolve", "coalesce", "sunder", "mend", "churn", "stagnate",
	"vertigo", "inertia", "momentum", "nexus", "threshold", "precipice",
	"crucible", "vessel", "conduit", "prism", "lens", "filter", "hush",
	"clamor", "chaos", "order", "entropy", "synthesis", "catalyst", "residue",
	"edifice", "fragment", "debris", "monolith", "particle", "wave",
	"tether", "sever", "graft", "parched", "saturated", "flux", "static",
	"drift", "anchor", "void", "plenum", "dense", "tenuous", "opaque",
	"translucent", "luminous", "umbral", "incandescent", "smolder", "kindle",
	"quench", "scorch", "freeze", "thaw", "erode", "deposit", "submerge",
	"emerge", "descend", "ascend", "converge", "diverge", "spiral", "orbit",
	"warp", "weft", "grain", "texture", "pulse", "staccato", "legato",
	"cadence", "rhythm", "tempo", "cessation", "genesis", "zenith", "nadir",
	"cipher", "glyph", "sigil", "parable", "rune", "arcane", "mundane",
	"profane", "sacred", "visceral", "ethereal", "tangible", "ephemeral",
	"perennial", "vestige", "omen", "portent", "aura", "essence", "core",
	"husk", "pith", "marrow", "spark", "ember", "inferno", "deluge", "zephyr",
	"gale", "vortex", "quagmire", "mire", "quarry", "forge", "anvil", "hammer",
	"chisel", "scaffold", "foundation", "pillar", "keystone", "lintel",
	"rapture", "torpor", "fervor", "apathy", "verdant", "barren", "fertile",
	"arid", "lush", "desolate", "teeming", "serene", "tumultuous", "placid",
	"roil", "splice", "braid", "unravel", "knot", "weave", "fray", "hem",
	"brink", "cusp", "verge", "chasm", "crevice", "fissure", "rift", "schism",
	"gulf", "strait", "isthmus", "archipelago", "shard", "splinter", "sliver",
	"mote", "speck", "glimmer", "glisten", "shimmer", "dull", "patina",
	"tarnish", "polish", "grime", "sleek", "jagged", "smooth", "coarse",
	"brittle", "malleable", "rigid", "supple", "taut", "slack", "gnarl",
	"compression", "tension", "shear", "torque", "pendulum",
	"fulcrum", "lever", "pivot", "axis", "trajectory", "parabola",
	"ellipse", "symmetry", "asymmetry", "balance", "imbalance", "counterpoint",
	"harmony", "dissonance", "cacophony", "melody", "refrain", "chorus",
	"verse", "stanza", "prose", "meter", "scribe", "etch", "inscribe",
	"efface", "obscure", "reveal", "obfuscate", "clarify", "distill", "taint",
	"purge", "cleanse", "defile", "consecrate", "pristine", "corrupt",
	"virtuous", "vile", "magnificent", "wretched", "sublime", "ridiculous",
	"profound", "trivial", "momentous", "insignificant", "colossal", "minuscule",
	"finite", "infinite", "bounded", "limitless", "quantum", "singularity",
	"plurality", "solitude", "covenant", "pact", "vow", "oath",
	"decree", "edict", "mandate", "anarchy", "tyranny", "utopia", "dystopia",
	"haven", "wasteland", "oasis", "mirage", "phantom", "specter", "wraith",
	"beacon", "lighthouse", "fog", "mist", "haze", "clear", "murky", "turbid",
	"spectrum", "gradient", "monochrome", "vivid", "pale", "vibrant",
	"muted", "shrill", "sonorous", "muffled", "piercing", "blunt", "sharp",
	"serrated", "keen", "astute", "obtuse", "acute", "chronic",
	"sporadic", "constant", "erratic", "predictable", "capricious", "steadfast",
	"volatile", "stable", "precarious", "secure", "resolute",
	"wavering", "conviction", "doubt", "certitude", "ambiguity", "lucid",
	"transparent", "crystalline", "amorphous", "defined",
	"nebulous", "abstract", "concrete", "theoretical", "applied",
	"raw", "refined", "primal", "civilized", "feral", "tame", "wild", "cultivated",
	"fallow", "harvest", "sow", "reap", "glean", "thresh", "winnow", "sift",
	"amalgam", "alloy", "pure", "base", "noble", "common", "rare", "abundant",
	"scarce", "copious", "meager", "lavish", "austere", "ornate", "spartan",
}

// matureSeedWords pushes toward darker, adult themes.
var matureSeedWords = []string{
	"obsession", "betrayal", "vendetta", "addiction", "decadence", "vice",
	"temptation", "forbidden", "scandal", "infidelity", "jealousy", "rivalry",
	"blackmail", "ransom", "heist", "smuggler", "cartel", "syndicate",
	"corruption", "bribery", "conspiracy", "assassin", "mercenary", "warlord",
	"massacre", "plague", "famine", "exile", "torment", "ruin", "grief",
	"vengeance", "madness", "paranoia", "dread", "carnage", "requiem",
	"intoxication", "seduction", "longing", "desire", "passion", "yearning",
	"tryst", "elopement", "courtesan", "masquerade", "revelry", "hedonism",
	"indulgence", "sin", "penance", "confession", "heresy", "cult", "ritual",
	"sacrifice", "bloodline", "inheritance", "usurper", "regicide", "mutiny",
	"interrogation", "captivity", "escape", "fugitive", "outlaw", "bounty",
}
