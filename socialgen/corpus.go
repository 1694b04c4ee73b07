package socialgen

// locale groups the country/state tables with the text corpus used for
// comments attributed to that country.
type locale struct {
	Country   string
	States    []string
	Positive  []string
	Negative  []string
	FirstName []string
	LastName  []string
}

var locales = []locale{
	{
		Country: "Brasil",
		States:  []string{"São Paulo", "Rio de Janeiro", "Minas Gerais", "Bahia", "Paraná"},
		Positive: []string{
			"Adorei muito bom, excelente produto!",
			"Gostei muito, sim recomendo demais!!!",
			"Muito bom mesmo, adorei cada detalhe",
		},
		Negative: []string{
			"Não gostei, muito ruim e péssimo atendimento",
			"Péssimo, não recomendo de jeito nenhum",
			"Ruim demais, não vale o preço",
		},
		FirstName: []string{"joão", "maria", "pedro", "ana", "carlos"},
		LastName:  []string{"SILVA", "santos", "OLIVEIRA", "souza", "pereira"},
	},
	{
		Country: "Estados Unidos",
		States:  []string{"Califórnia", "Texas", "Nova York", "Flórida", "Illinois"},
		Positive: []string{
			"This was very good, I love the quality!",
			"Excellent product, you are going to like it",
			"Very good value and the shipping was fast",
		},
		Negative: []string{
			"This was very bad and the support is terrible",
			"I hate it, the quality was bad for the price",
			"Terrible experience, very bad packaging",
		},
		FirstName: []string{"mary", "JOHN", "patricia", "james", "linda"},
		LastName:  []string{"smith", "JOHNSON", "williams", "brown", "jones"},
	},
	{
		Country: "Espanha",
		States:  []string{"Madrid", "Catalunha", "Andaluzia", "Valência", "Galiza"},
		Positive: []string{
			"Es muy bueno, me encantó el producto",
			"Excelente compra, es muy bueno de verdad",
			"Muy bueno el servicio y la calidad que es genial",
		},
		Negative: []string{
			"Es muy malo, no me gustó nada",
			"Terrible servicio, es malo de verdad",
			"No me gustó, la calidad es muy mala",
		},
		FirstName: []string{"carmen", "JOSÉ", "lucía", "antonio", "isabel"},
		LastName:  []string{"garcía", "FERNÁNDEZ", "lópez", "martínez", "sánchez"},
	},
	{
		Country: "França",
		States:  []string{"Île-de-France", "Auvergne-Rhône-Alpes", "Nova Aquitânia", "Occitânia"},
		Positive: []string{
			"C'est très bon, j'ai adoré le produit",
			"Excellent achat, le service est très bon",
			"Très bon rapport qualité prix, c'est excellent",
		},
		Negative: []string{
			"C'est très mauvais, je n'ai pas aimé",
			"Terrible expérience, le produit est mauvais",
			"Je n'ai pas aimé, c'est vraiment mauvais",
		},
		FirstName: []string{"marie", "JEAN", "sophie", "pierre", "claire"},
		LastName:  []string{"martin", "BERNARD", "dubois", "petit", "moreau"},
	},
	{
		Country: "Alemanha",
		States:  []string{"Baviera", "Renânia do Norte-Vestfália", "Baden-Württemberg", "Baixa Saxônia"},
		Positive: []string{
			"Das ist sehr gut und ausgezeichnet verarbeitet",
			"Ich liebe das Produkt, es ist sehr gut",
			"Sehr gut, die Qualität ist ausgezeichnet",
		},
		Negative: []string{
			"Das ist sehr schlecht, ich hasse die Verpackung",
			"Schrecklich, der Service ist sehr schlecht",
			"Ich hasse es, das Produkt ist schlecht",
		},
		FirstName: []string{"hans", "ANNA", "peter", "julia", "stefan"},
		LastName:  []string{"müller", "SCHMIDT", "schneider", "fischer", "weber"},
	},
}
