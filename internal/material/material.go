// Package material owns the read-only CNC material knowledge table.
// Material information feeds triage text and the materials reference API;
// it never enters numeric scoring.
package material

import (
	"strings"

	"github.com/opencnc/intake/internal/model"
)

// UnknownSlug identifies the Other / Unknown entry. Analyses with no
// material selection resolve to it.
const UnknownSlug = "other-unknown"

// Material is one knowledge-table entry.
type Material struct {
	Slug       string `json:"slug"`
	Label      string `json:"label"`
	Difficulty string `json:"difficulty"`

	// MachiningReality is a shop-floor narrative of how the material cuts.
	MachiningReality string `json:"machining_reality"`

	CostDrivers       []string `json:"cost_drivers"`
	QuoteImplications []string `json:"quote_implications"`
}

var table = []Material{
	{
		Slug:       "aluminum-6061",
		Label:      "Aluminum — 6061-T6 (default)",
		Difficulty: "Low",
		MachiningReality: "6061-T6 is the most forgiving CNC material in common use. It" +
			" shears cleanly, produces well-formed chips, and allows" +
			" aggressive feeds and speeds (SFM 800–1200+) with standard" +
			" uncoated or ZrN-coated carbide endmills. Tool life is" +
			" excellent — a single 1/2\" endmill can often run 200+ parts" +
			" before replacement. The material is thermally conductive, so" +
			" heat leaves through the chip rather than building at the" +
			" cutting edge, which means mist coolant or even dry cutting" +
			" is viable for many operations.",
		CostDrivers: []string{
			"Very low tool wear — standard 2- or 3-flute carbide endmills last hundreds of parts",
			"Fast cycle times: feeds of 80–150 IPM and full-slotting depths of 1×D are routine",
			"Mist or flood coolant both work; no special coolant delivery needed",
			"Low scrap risk — the material is ductile and forgiving of minor programming errors",
			"Stock is cheap and widely available in plate, bar, and round",
		},
		QuoteImplications: []string{
			"Straightforward quoting — cycle time estimates are reliable and tool cost is minimal",
			"Confirm temper: T6 (general purpose) vs T651 (stress-relieved, better flatness for plates)",
			"Anodize-ready surfaces need Ra 32–63 µin finish passes; factor in if cosmetic",
			"Thin-wall features (<0.040\") are achievable but may need reduced stepover and spring passes",
		},
	},
	{
		Slug:       "aluminum-7075",
		Label:      "Aluminum — 7075-T6",
		Difficulty: "Low",
		MachiningReality: "7075-T6 is significantly harder and stronger than 6061 (UTS" +
			" ~83 ksi vs ~45 ksi) and machines at similar speeds, but it" +
			" is less forgiving under aggressive cuts. It produces shorter," +
			" snappier chips and is more prone to residual-stress warping" +
			" in thin-wall or asymmetric parts. Hogging pockets in 7075" +
			" plate can release internal stresses that bow or twist the" +
			" part after unclamping — stress-relief cycles or alternating" +
			" roughing sides may be needed.",
		CostDrivers: []string{
			"Tool wear ~20–30% higher than 6061; coated carbide (AlTiN) extends life at high speeds",
			"Feeds and speeds comparable to 6061 (SFM 600–1000) but with slightly lower DOC limits",
			"Residual stress is the hidden cost: thin-wall parts may need intermediate stress relief or flip roughing",
			"Stock cost ~1.5–2× 6061; scrapping a large 7075 billet is a real financial hit",
			"Chip evacuation is easier than 6061 (shorter chips) but chip-to-surface contact can gall soft tooling",
		},
		QuoteImplications: []string{
			"Confirm temper and whether plate is pre-stretched (T7351) to reduce residual stress",
			"Grain direction matters for aerospace — ask if orientation relative to rolling direction is specified",
			"Material certs (mill certs) are typically required; AMS 4078 / AMS 4045 callouts are common",
			"Ask about stress-relief strategy for thin-wall geometry — this can add ops and cycle time",
		},
	},
	{
		Slug:       "steel-1018",
		Label:      "Steel — 1018 (low carbon)",
		Difficulty: "Medium",
		MachiningReality: "1018 is soft (~Brinell 126, ~72 HRB) and ductile, which makes" +
			" it gummy rather than brittle. It produces long, stringy chips" +
			" that wrap around tooling and clog flutes if chip-breaking" +
			" geometry isn't used. Built-up edge (BUE) is common at low" +
			" cutting speeds — the material welds itself to the tool tip" +
			" and tears rather than shearing. Running faster (SFM 400–600)" +
			" with coated inserts and positive rake geometry reduces BUE" +
			" and improves finish. Compared to 4140, chip control is worse" +
			" and surface finish is harder to achieve, but tool wear is" +
			" lower and the material is very forgiving structurally.",
		CostDrivers: []string{
			"Tool wear is moderate; BUE is the bigger threat — destroys finish before it destroys the tool",
			"Cycle times ~2–3× aluminum: typical SFM 400–600 with carbide, lower with HSS",
			"Flood coolant strongly recommended for chip evacuation and BUE prevention",
			"Stringy chips can bird-nest on the tool or workpiece, causing surface damage and stoppages",
			"Stock is cheap and widely available; scrap cost is low per unit weight",
		},
		QuoteImplications: []string{
			"Ask if carburizing or case hardening is planned after machining — tolerances shift after heat treat",
			"Surface finish expectations: 1018 doesn't take a good polish; Ra 63 µin is realistic, 32 µin is a fight",
			"Confirm whether customer needs cold-rolled (1018 CF) vs hot-rolled — hardness and surface differ",
			"Post-machining heat treat (normalize, carburize, Q&T) must be specified up front",
		},
	},
	{
		Slug:       "steel-4140",
		Label:      "Steel — 4140 (alloy)",
		Difficulty: "Medium",
		MachiningReality: "4140 is a step up from 1018 in every machining dimension." +
			" Pre-hard (28–32 HRC) it cuts cleanly with coated carbide," +
			" breaks chips well, and produces a better surface finish than" +
			" low-carbon steel — the chromium–molybdenum alloy content" +
			" actually improves machinability over plain carbon grades." +
			" However, it generates more heat, wears tools faster, and the" +
			" cost jump to hardened 4140 (>40 HRC) is dramatic: tool life" +
			" drops by 50–70%, speeds must be halved, and ceramic or CBN" +
			" inserts may be needed.",
		CostDrivers: []string{
			"Tool wear 1.5–2× that of 1018; coated carbide (TiAlN, AlCrN) is required, not optional",
			"Cycle times ~3–4× aluminum in pre-hard condition; ~5–6× in hardened (>40 HRC) condition",
			"Flood coolant is essential; through-spindle preferred for deep pockets and holes",
			"Pre-hard vs annealed vs hardened condition fundamentally changes the quoting equation",
			"Stock cost ~2× low-carbon steel; scrap is painful on large billets",
		},
		QuoteImplications: []string{
			"Confirm exact hardness condition: annealed (~197 HB), pre-hard (28–32 HRC), or hardened (40+ HRC)",
			"If hardened after machining, tolerances will shift — budget for finish grind on critical dims",
			"Ask about Q&T (quench and temper) requirements — ASTM A829 and AMS 6382 are common callouts",
			"Material certs are expected for structural, hydraulic, and oil/gas applications",
		},
	},
	{
		Slug:       "stainless-304-316",
		Label:      "Stainless Steel — 304/316",
		Difficulty: "High",
		MachiningReality: "Austenitic stainless (304, 316) work-hardens aggressively:" +
			" every pass that rubs instead of shearing creates a thin," +
			" glass-hard surface layer that dulls the next pass's cutting" +
			" edge. This means dull tools, light feeds, dwelling, and" +
			" re-cutting spring passes all make the problem worse. The fix" +
			" is sharp tools, rigid setups, aggressive chip loads (stay" +
			" above minimum chip thickness), and never letting the tool" +
			" rub. Tool life is roughly 1/3 to 1/4 of carbon steel at" +
			" equivalent feeds, and cycle times are 2–3× longer.",
		CostDrivers: []string{
			"High tool wear from work hardening: expect tool life 1/3 to 1/4 of carbon steel",
			"Cycle times 2–3× carbon steel — SFM 250–400 typical; slower still with interrupted cuts",
			"Flood coolant is mandatory: the material's low thermal conductivity traps heat at the cut",
			"Rigid workholding is critical — chatter causes rubbing, which triggers the work-hardening spiral",
			"Scrap risk is elevated: a work-hardened surface layer can render a part unsalvageable",
		},
		QuoteImplications: []string{
			"Confirm exact alloy: 304 (general) vs 316 (marine/chemical — slightly harder to machine)",
			"Surface finish matters more here — work-hardened surfaces tear; Ra callouts must be explicit",
			"Passivation (citric or nitric acid) is often required post-machining; electropolish adds more cost",
			"Lead times run longer: slower cycle times and more frequent tool changes reduce daily throughput",
		},
	},
	{
		Slug:       "titanium-ti64",
		Label:      "Titanium — Ti-6Al-4V",
		Difficulty: "Very High",
		MachiningReality: "Ti-6Al-4V combines high strength (UTS ~130 ksi), very low" +
			" thermal conductivity (~1/6 of steel), and significant" +
			" springback. Because heat doesn't leave through the chip, it" +
			" concentrates at the tool tip — cutting-edge temperatures can" +
			" exceed 600 °C even at modest speeds, causing rapid crater" +
			" wear and edge breakdown. Springback means the material" +
			" deflects under the tool and then recovers, causing" +
			" under-cutting on thin walls and poor dimensional control." +
			" Expect cycle times 3–5× aluminum and tool life 1/5 to 1/10" +
			" of what you'd see in 6061.",
		CostDrivers: []string{
			"Extreme tool wear driven by heat: tool life 1/5 to 1/10 of aluminum; premium coated carbide (AlTiN, nanocomposite) or PCD required",
			"Very slow cycle times — SFM 100–200 typical; 3–5× aluminum for equivalent geometry",
			"High-pressure through-spindle coolant (1000+ PSI) strongly recommended to manage cutting-edge heat",
			"Springback causes dimensional drift on thin walls; multiple light finish passes or spring passes needed",
			"Stock cost is very high ($15–40/lb for bar); a single scrapped billet can cost hundreds of dollars",
		},
		QuoteImplications: []string{
			"Confirm grade (Grade 5 is Ti-6Al-4V) and condition: annealed, STA (solution treated and aged), or ELI (extra low interstitials for medical)",
			"Material certs and full batch traceability are almost always required (AMS 4928, AMS 4911)",
			"Ask about post-machining: chemical milling, shot peening, anodize, or PVD coatings are common in aerospace",
			"Budget for significantly longer lead times and higher per-part cost — plan for 4–8× the cost of equivalent 6061 parts",
		},
	},
	{
		Slug:       "inconel-718",
		Label:      "Inconel — 718",
		Difficulty: "Very High",
		MachiningReality: "Inconel 718 is among the most punishing CNC materials." +
			" It work-hardens like stainless but worse, has even lower" +
			" thermal conductivity than titanium, and is highly abrasive" +
			" due to hard carbide particles in the microstructure. Cutting" +
			" temperatures routinely exceed 700 °C. Ceramic inserts can" +
			" rough at higher speeds (SFM 600–1000) but are brittle and" +
			" demand rigid, chatter-free setups. Carbide finishing at SFM" +
			" 70–120 is common. Tool life in Inconel is often measured in" +
			" minutes, not parts — a single roughing insert may last" +
			" 5–15 minutes of cut time.",
		CostDrivers: []string{
			"Extreme tool wear: roughing inserts may last only 5–15 minutes of cutting time; ceramics needed for productivity",
			"Very slow cycle times with carbide (SFM 70–120); ceramics are faster but require perfect rigidity and zero chatter",
			"High-pressure coolant (1000+ PSI through spindle) is mandatory — inadequate coolant destroys tools in seconds",
			"Cutting forces are very high; specialized high-clamp-force workholding and rigid, high-torque spindles are required",
			"Stock cost is extreme ($30–80/lb); scrap is catastrophically expensive on large forgings or billets",
		},
		QuoteImplications: []string{
			"Confirm alloy condition: solution annealed (~30 HRC), age-hardened (~40–44 HRC), or direct-aged — machining difficulty varies enormously",
			"Material certs with full heat-lot traceability are mandatory (AMS 5662, AMS 5663)",
			"Verify the shop has Inconel experience, ceramic tooling, and high-pressure coolant capability before committing",
			"Expect cost and lead time 6–10× equivalent steel parts; fewer shops are qualified and capacity is limited",
		},
	},
	{
		Slug:       UnknownSlug,
		Label:      "Other / Unknown",
		Difficulty: "Unknown",
		MachiningReality: "Material is not specified. Without knowing the alloy, hardness," +
			" and thermal properties, it is impossible to estimate tool wear" +
			" rates, cycle times, or coolant requirements. A quote without" +
			" a confirmed material is a guess — the difference between" +
			" machining 6061 aluminum and Inconel 718 is easily a 10×" +
			" cost multiplier on the same geometry.",
		CostDrivers: []string{
			"Tool wear is unpredictable: a 10× range between easy aluminum and superalloys",
			"Cycle time cannot be estimated — feeds, speeds, and depth of cut depend entirely on material",
			"Coolant strategy (mist, flood, high-pressure TSC) depends on material thermal properties",
			"Workholding forces and rigidity requirements scale with material hardness and cutting forces",
			"Scrap risk is unquantifiable: material cost per pound ranges from $2 (aluminum) to $80 (Inconel)",
		},
		QuoteImplications: []string{
			"Request exact material specification (alloy, grade, temper/condition) before quoting",
			"Confirm hardness or heat treat state — this matters more than alloy name alone for machinability",
			"Ask about any coatings, plating, or special post-machining processes",
			"Without material, any quoted price is a placeholder — flag this to the customer explicitly",
		},
	},
}

var bySlug = func() map[string]*Material {
	m := make(map[string]*Material, len(table))
	for i := range table {
		m[table[i].Slug] = &table[i]
	}
	if _, ok := m[UnknownSlug]; !ok {
		panic("material: table has no Other / Unknown entry")
	}
	return m
}()

// All returns the materials in table order (the UI selection order).
func All() []Material {
	out := make([]Material, len(table))
	copy(out, table)
	return out
}

// Lookup finds a material by slug or exact label. The second return value
// is false when no entry matches.
func Lookup(slugOrLabel string) (*Material, bool) {
	if m, ok := bySlug[slugOrLabel]; ok {
		cp := *m
		return &cp, true
	}
	for i := range table {
		if table[i].Label == slugOrLabel {
			cp := table[i]
			return &cp, true
		}
	}
	return nil, false
}

// Context resolves a material selection (slug or label, empty for unknown)
// into the MaterialContext consumed by triage. Selections that do not match
// the table are treated as unknown.
func Context(slugOrLabel string) model.MaterialContext {
	m, ok := Lookup(slugOrLabel)
	if !ok || m.Slug == UnknownSlug {
		return model.MaterialContext{Label: triageLabel("Other / Unknown"), Unknown: true}
	}
	return model.MaterialContext{Label: triageLabel(m.Label)}
}

// triageLabel strips parenthetical notes from a material label so triage
// text reads cleanly ("Aluminum — 6061-T6 (default)" -> "Aluminum — 6061-T6").
func triageLabel(label string) string {
	if i := strings.Index(label, " ("); i >= 0 {
		return strings.TrimSpace(label[:i])
	}
	return label
}
