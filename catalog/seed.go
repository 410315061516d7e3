package catalog

import (
	"github.com/shopspring/decimal"
)

// Seed returns the launch catalog. Ids are 1..7 in order.
func Seed() []Product {
	return []Product{
		{
			ID:              1,
			Name:            "BPC-157",
			Price:           decimal.RequireFromString("55.00"),
			Size:            "5mg",
			Description:     "BPC-157 is a pentadecapeptide composed of 15 amino acids. It is a partial sequence of body protection compound (BPC) that is discovered in and isolated from human gastric juice. Experimentally it has been demonstrated to accelerate the healing of many different wounds, including tendon-to-bone healing and superior healing of damaged ligaments.",
			ImageURL:        PlaceholderImage,
			Category:        DefaultCategory,
			SKU:             StringPtr("260-005-CP"),
			CASNumber:       StringPtr("137525-51-0"),
			Formula:         StringPtr("C62H98N16O22"),
			MolecularWeight: StringPtr("1419.5 g/mol"),
			Purity:          StringPtr("99% HPLC"),
			PubChemCID:      StringPtr("9943215"),
			Synonyms:        StringPtr("Bepecin, PL 14736, PL 10"),
			Sequence:        StringPtr("Gly-Glu-Pro-Pro-Pro-Gly-Lys-Pro-Ala-Asp-Asp-Ala-Gly-Leu-Val"),
		},
		{
			ID:              2,
			Name:            "TB-500",
			Price:           decimal.RequireFromString("60.00"),
			Size:            "5mg",
			Description:     "TB-500 is a synthetic fraction of the protein thymosin beta-4. It is present in virtually all human and animal cells. The main purpose of this peptide is to promote healing. The effects of TB-500 have been linked to an increase in red blood cell count, angiogenesis, and collagen deposition.",
			ImageURL:        PlaceholderImage,
			Category:        DefaultCategory,
			SKU:             StringPtr("330-006-TB"),
			CASNumber:       StringPtr("77591-33-4"),
			Formula:         StringPtr("C212H350N56O78S"),
			MolecularWeight: StringPtr("4963.5 g/mol"),
			Purity:          StringPtr("99% HPLC"),
			PubChemCID:      StringPtr("16132341"),
			Synonyms:        StringPtr("Thymosin Beta 4"),
			Sequence:        StringPtr("Ac-Ser-Asp-Lys-Pro-Asp-Met-Ala-Glu-Ile-Glu-Lys-Phe-Asp-Lys-Ser-Lys-Leu-Lys-Lys-Thr-Glu-Thr-Gln-Glu-Lys-Asn-Pro-Leu-Pro-Ser-Lys-Glu-Thr-Ile-Glu-Gln-Glu-Lys-Gln-Ala-Gly-Glu-Ser"),
		},
		{
			ID:              3,
			Name:            "Melanotan 2",
			Price:           decimal.RequireFromString("45.00"),
			Size:            "10mg",
			Description:     "Melanotan II is a synthetic analogue of the hormone alpha-melanocyte stimulating hormone (α-MSH). It was originally developed as a potential treatment for female sexual dysfunction and erectile dysfunction, but is now primarily known for its ability to stimulate melanogenesis.",
			ImageURL:        PlaceholderImage,
			Category:        DefaultCategory,
			SKU:             StringPtr("110-002-MT"),
			CASNumber:       StringPtr("121062-08-6"),
			Formula:         StringPtr("C50H69N15O9"),
			MolecularWeight: StringPtr("1024.18 g/mol"),
			Purity:          StringPtr("99% HPLC"),
			PubChemCID:      StringPtr("92432"),
			Synonyms:        StringPtr("MT-2, MT-II"),
			Sequence:        StringPtr("Ac-Nle-Asp-His-D-Phe-Arg-Trp-Lys-NH2"),
		},
		{
			ID:              4,
			Name:            "Ipamorelin",
			Price:           decimal.RequireFromString("35.00"),
			Size:            "2mg",
			Description:     "Ipamorelin is a growth hormone secretagogue (GHS) and an analog of the hormone Ghrelin. It selectively binds to the ghrelin receptor to stimulate the release of growth hormone.",
			ImageURL:        PlaceholderImage,
			Category:        DefaultCategory,
			SKU:             StringPtr("PEP-IPA-2MG"),
			CASNumber:       StringPtr("170851-70-4"),
			Formula:         StringPtr("C38H49N9O5"),
			MolecularWeight: StringPtr("711.85 g/mol"),
			Purity:          StringPtr("99% HPLC"),
			PubChemCID:      StringPtr("9809473"),
			Synonyms:        StringPtr("Ipamorelin Acetate"),
			Sequence:        StringPtr("Aib-His-D-2-Nal-D-Phe-Lys-NH2"),
		},
		{
			ID:              5,
			Name:            "CJC-1295",
			Price:           decimal.RequireFromString("43.00"),
			Size:            "2mg",
			Description:     "CJC-1295 is a tetra-substituted peptide analog of GHRH1–29. It allows for a more sustained release of growth hormone without increasing prolactin or cortisol levels.",
			ImageURL:        PlaceholderImage,
			Category:        DefaultCategory,
			SKU:             StringPtr("PEP-CJC-2MG"),
			CASNumber:       StringPtr("863288-34-0"),
			Formula:         StringPtr("C152H252N44O42"),
			MolecularWeight: StringPtr("3367.97 g/mol"),
			Purity:          StringPtr("99% HPLC"),
			PubChemCID:      StringPtr("N/A"),
			Synonyms:        StringPtr("CJC-1295 No DAC"),
			Sequence:        StringPtr("Tyr-D-Ala-Asp-Ala-Ile-Phe-Thr-Gln-Ser-Tyr-Arg-Lys-Val-Leu-Ala-Gln-Leu-Sark-Ala-Arg-Lys-Leu-Leu-Gln-Asp-Ile-Leu-Ser-Arg-NH2"),
		},
		{
			ID:              6,
			Name:            "Semaglutide",
			Price:           decimal.RequireFromString("115.00"),
			Size:            "3mg",
			Description:     "Semaglutide is a GLP-1 receptor agonist primarily used for weight management and blood sugar control. It mimics the action of the human incretin glucagon-like peptide-1 (GLP-1).",
			ImageURL:        PlaceholderImage,
			Category:        DefaultCategory,
			SKU:             StringPtr("PEP-SEMA-3MG"),
			CASNumber:       StringPtr("910463-68-2"),
			Formula:         StringPtr("C187H291N45O59"),
			MolecularWeight: StringPtr("4113.58 g/mol"),
			Purity:          StringPtr("99% HPLC"),
			PubChemCID:      StringPtr("56843331"),
			Synonyms:        StringPtr("Ozempic generic"),
			Sequence:        StringPtr("His-Aib-Glu-Gly-Thr-Phe-Thr-Ser-Asp-Val-Ser-Ser-Tyr-Leu-Glu-Gly-Gln-Ala-Ala-Lys(AEEAc-AEEAc-gamma-Glu-17-carboxyheptadecanoyl)-Glu-Phe-Ile-Ala-Trp-Leu-Val-Arg-Gly-Arg-Gly"),
		},
		{
			ID:              7,
			Name:            "5-Amino-1MQ",
			Price:           decimal.RequireFromString("255.00"),
			Size:            "50mg (60 Capsules)",
			Description:     "5-amino-1MQ is a small-molecule research compound that functions as a selective nicotinamide N-methyltransferase (NNMT) inhibitor. In preclinical metabolic models, it enhances NAD+ salvage pathway flux, leading to improved energy homeostasis and sirtuin activation. 5-Amino-1MQ is used to investigate epigenetic and redox control mechanisms associated with cellular metabolism and aging.",
			ImageURL:        PlaceholderImage,
			Category:        DefaultCategory,
			SKU:             StringPtr("260-005-CP"),
			CASNumber:       StringPtr("42464-96-0"),
			Formula:         StringPtr("C10H11N2"),
			MolecularWeight: StringPtr("159.21 g/mol"),
			Purity:          StringPtr("99% HPLC"),
			PubChemCID:      StringPtr("N/A"),
			Synonyms:        StringPtr("5-Amino-1-methylquinolinium"),
			Sequence:        StringPtr("N/A"),
		},
	}
}
