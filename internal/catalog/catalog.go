package catalog

import "purrfect-cats/internal/domain"

// DefaultID is the id the built-in catalog is served under.
const DefaultID = "purrfect-cat-world"

// Default returns the built-in cat page content.
func Default() domain.Catalog {
	return domain.Catalog{
		ID:    DefaultID,
		Title: "Purrfect Cat World",
		Images: []string{
			"https://upload.wikimedia.org/wikipedia/commons/thumb/3/3a/Cat03.jpg/1200px-Cat03.jpg",
			"https://upload.wikimedia.org/wikipedia/commons/thumb/4/4d/Cat_November_2010-1a.jpg/1200px-Cat_November_2010-1a.jpg",
			"https://upload.wikimedia.org/wikipedia/commons/thumb/b/bc/Juvenile_Ragdoll.jpg/1200px-Juvenile_Ragdoll.jpg",
			"https://upload.wikimedia.org/wikipedia/commons/thumb/6/68/Orange_tabby_cat_sitting_on_fallen_leaves-Hisashi-01A.jpg/1200px-Orange_tabby_cat_sitting_on_fallen_leaves-Hisashi-01A.jpg",
		},
		Characteristics: []string{
			"Independent nature",
			"Excellent hunters with sharp claws and teeth",
			"Flexible bodies and quick reflexes",
			"Keen senses, especially hearing and night vision",
			"Communicate through vocalizations, body language, and scent",
		},
		Breeds: []domain.Breed{
			{Name: "Siamese", Description: "Known for their distinctive coloring and vocal nature"},
			{Name: "Maine Coon", Description: "Large, fluffy cats with tufted ears"},
			{Name: "Persian", Description: "Recognizable by their flat faces and long, luxurious coats"},
			{Name: "Bengal", Description: "Wild-looking cats with leopard-like spots"},
			{Name: "Scottish Fold", Description: "Characterized by their folded ears"},
		},
		Questions: []domain.Question{
			{
				Prompt:  "How many hours a day do cats sleep on average?",
				Options: []string{"4-6 hours", "8-10 hours", "12-16 hours", "20-22 hours"},
				Answer:  "12-16 hours",
			},
			{
				Prompt:  "Which breed is known for its folded ears?",
				Options: []string{"Siamese", "Scottish Fold", "Maine Coon", "Bengal"},
				Answer:  "Scottish Fold",
			},
			{
				Prompt:  "What is a group of cats called?",
				Options: []string{"A pack", "A clowder", "A herd", "A flock"},
				Answer:  "A clowder",
			},
			{
				Prompt:  "Which sense is sharpest in cats at night?",
				Options: []string{"Taste", "Touch", "Vision", "Smell of citrus"},
				Answer:  "Vision",
			},
		},
	}
}

// Catalogs returns the built-in catalogs keyed by id.
func Catalogs() map[string]domain.Catalog {
	c := Default()
	return map[string]domain.Catalog{c.ID: c}
}
