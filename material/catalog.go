package material

// 导体目录：名称, σ (S/m), μr, 别名
func init() {
	addConductor("Aluminio", 3.82e7, 1.0, "Aluminum", "Aluminium")
	addConductor("Cobre", 5.80e7, 1.0, "Copper")
	addConductor("Oro", 4.10e7, 1.0, "Gold")
	addConductor("Plata", 6.17e7, 1.0, "Silver")
	addConductor("Hierro", 1.03e7, 500.0, "Iron")
	addConductor("Níquel", 1.45e7, 100.0, "Nickel", "Niquel")
	addConductor("Latón", 1.50e7, 1.0, "Brass", "Laton")
	addConductor("Zinc", 1.67e7, 1.0)
	addConductor("Tungsteno", 1.82e7, 1.0, "Tungsten")
}

// 介质目录：名称, tanδ, μr, εr, 别名
func init() {
	addDielectric("Aire", 0, 1.0, 1.0005, "Air")
	addDielectric("Alcohol_etílico", 100.00e-3, 1.0, 25.0, "Ethyl_alcohol", "Alcohol_etilico")
	addDielectric("Oxido_de_aluminio", 0.60e-3, 1.0, 8.8, "Aluminum_oxide", "Alumina")
	addDielectric("Baquelita", 22.00e-3, 1.0, 4.74, "Bakelite")
	addDielectric("Dióxido_de_carbono", 0, 1.0, 1.001, "Carbon_dioxide", "Dioxido_de_carbono")
	addDielectric("Vidrio", 2.00e-3, 1.0, 4.0, "Glass")
	addDielectric("Hielo", 50.00e-3, 1.0, 4.2, "Ice")
	addDielectric("Mica", 0.60e-3, 1.0, 5.4)
	addDielectric("Nylon", 20.00e-3, 1.0, 3.5)
	addDielectric("Papel", 8.00e-3, 1.0, 3.0, "Paper")
	addDielectric("Plexiglás", 30.00e-3, 1.0, 3.45, "Plexiglass", "Plexiglas")
	addDielectric("Polietileno", 0.20e-3, 1.0, 2.26, "Polyethylene")
	addDielectric("Polipropileno", 0.30e-3, 1.0, 2.25, "Polypropylene")
	addDielectric("Poliestireno", 0.05e-3, 1.0, 2.56, "Polystyrene")
	addDielectric("Porcelana", 14.00e-3, 1.0, 6.0, "Porcelain")
	addDielectric("Vidrio_Pyrex", 0.60e-3, 1.0, 4.0, "Pyrex", "Pyrex_glass")
	addDielectric("Cuarzo", 0.75e-3, 1.0, 3.8, "Quartz")
	addDielectric("Hule", 2.00e-3, 1.0, 2.5, "Rubber")
	addDielectric("Nieve", 500.00e-3, 1.0, 3.3, "Snow")
	addDielectric("Tierra_seca", 50.00e-3, 1.0, 2.8, "Dry_soil", "Dry_earth")
	addDielectric("Teflon", 0.30e-3, 1.0, 2.1, "PTFE")
	addDielectric("Madera_seca", 10.00e-3, 1.0, 1.5, "Dry_wood")
}
