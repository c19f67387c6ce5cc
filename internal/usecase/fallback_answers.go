package usecase

const sandAnswer = `🏖️ **CONSTRUCTION SAND GUIDE**

**River Sand:**
- Quality: Natural, rounded grains
- Best for: Plastering and concrete work
- Silt Content: Should be <3%
- Standard: IS 383:2016

**M-Sand (Manufactured):**
- Quality: Crushed granite, angular particles
- Best for: RCC works and concrete
- Advantages: Consistent gradation, eco-friendly
- Zone: Typically Zone II

**Pit Sand:**
- Quality: Coarse, sharp edges
- Best for: Mortar and foundation works
- Feature: Excellent bonding strength

**Pro Tip:** Always conduct silt content test before use.`

const steelAnswer = `🔩 **CONSTRUCTION STEEL TYPES**

**TMT Bars (Thermo-Mechanically Treated):**
- Grade: Fe 500, Fe 500D
- Strength: 500 MPa yield strength
- Features: Earthquake resistant, superior ductility
- Best for: All RCC structures
- Standard: IS 1786:2008

**HYSD Bars (High Yield Strength Deformed):**
- Features: Better bond strength, corrosion resistant
- Applications: Critical structural elements

**Quality Check:** Always look for ISI mark and proper certification.`

const cementAnswer = `🏭 **CEMENT TYPES & APPLICATIONS**

**OPC 53 Grade:**
- Strength: High early strength
- Setting: Initial 30 min, Final 600 min
- Best for: High-stress structures, pre-stressed concrete
- Standard: IS 269:2015

**PPC (Pozzolana Portland Cement):**
- Features: Lower heat generation, eco-friendly
- Best for: Mass concrete, marine works

**PSC (Portland Slag Cement):**
- Features: High durability, sulfate resistant
- Best for: Foundations, water-retaining structures

**Storage:** Keep in dry place and use within 3 months.`

const concreteAnswer = `🧱 **CONCRETE GRADE GUIDE**

**M20 Concrete:**
- Mix Ratio: 1:1.5:3
- Strength: 20 N/mm²
- Usage: General purpose, foundations

**M25 Concrete:**
- Mix Ratio: 1:1:2
- Strength: 25 N/mm²
- Usage: Beams, columns, slabs

**M30 Concrete:**
- Type: Design mix
- Strength: 30 N/mm²
- Usage: High-rise structures, bridges

**Standard:** IS 456:2000 and IS 10262:2019 for mix design.

**Curing:** Minimum 14 days for proper strength development.`

const generalGeneric = "🏗️ I specialize in construction expertise including materials, techniques, standards, and project management. Please ask me about specific construction topics for detailed technical advice."
