package bank

import "quiz-session-service/internal/models"

// seedData is the embedded question bank, partitioned by exam type and
// topic. Difficulty tags use the Italian vocabulary of the study material.
func seedData() map[string]map[string][]models.Question {
	return map[string]map[string][]models.Question{
		"Informatica": {
			"Programmazione": {
				{
					Prompt:      "Quale di questi è un linguaggio di programmazione orientato agli oggetti?",
					Options:     []string{"HTML", "CSS", "Java", "SQL"},
					Correct:     2,
					Explanation: "Java è un linguaggio di programmazione orientato agli oggetti, mentre HTML e CSS sono linguaggi di markup e styling, e SQL è un linguaggio per database.",
					Difficulty:  "facile",
				},
				{
					Prompt:      "Cosa significa 'OOP' nella programmazione?",
					Options:     []string{"Object Oriented Programming", "Open Office Program", "Online Operation Protocol", "Optimal Output Process"},
					Correct:     0,
					Explanation: "OOP sta per Object Oriented Programming (Programmazione Orientata agli Oggetti), un paradigma di programmazione basato su oggetti.",
					Difficulty:  "medio",
				},
				{
					Prompt:      "Qual è il principio dell'ereditarietà nella programmazione OOP?",
					Options:     []string{"Nascondere i dettagli implementativi", "Creare nuove classi basate su classi esistenti", "Permettere a oggetti di rispondere diversamente allo stesso messaggio", "Raggruppare dati e metodi insieme"},
					Correct:     1,
					Explanation: "L'ereditarietà permette di creare nuove classi (classi figlie) che ereditano proprietà e metodi da classi esistenti (classi padre).",
					Difficulty:  "medio",
				},
				{
					Prompt:      "Cosa rappresenta il polimorfismo in OOP?",
					Options:     []string{"Un oggetto può avere più forme", "Una classe può ereditare da più classi", "Un metodo può essere sovrascritto", "Tutte le precedenti"},
					Correct:     3,
					Explanation: "Il polimorfismo include tutti questi aspetti: oggetti che assumono forme diverse, ereditarietà multipla e override dei metodi.",
					Difficulty:  "difficile",
				},
			},
			"Database": {
				{
					Prompt:      "Quale comando SQL viene utilizzato per recuperare dati da una tabella?",
					Options:     []string{"INSERT", "SELECT", "UPDATE", "DELETE"},
					Correct:     1,
					Explanation: "SELECT è il comando SQL utilizzato per recuperare dati da una o più tabelle in un database.",
					Difficulty:  "facile",
				},
				{
					Prompt:      "Cos'è una chiave primaria in un database?",
					Options:     []string{"Un campo che può essere nullo", "Un campo che identifica univocamente ogni record", "Un campo di solo lettura", "Un campo numerico"},
					Correct:     1,
					Explanation: "Una chiave primaria è un campo (o combinazione di campi) che identifica univocamente ogni record in una tabella.",
					Difficulty:  "medio",
				},
				{
					Prompt:      "Cosa significa ACID nelle transazioni database?",
					Options:     []string{"Atomicity, Consistency, Isolation, Durability", "Advanced, Complete, Integrated, Database", "Automatic, Consistent, Independent, Durable", "Access, Control, Identity, Data"},
					Correct:     0,
					Explanation: "ACID rappresenta le proprietà fondamentali delle transazioni: Atomicità, Consistenza, Isolamento e Durabilità.",
					Difficulty:  "difficile",
				},
			},
			"Algoritmi": {
				{
					Prompt:      "Qual è la complessità temporale dell'algoritmo di ordinamento Quick Sort nel caso medio?",
					Options:     []string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"},
					Correct:     1,
					Explanation: "Quick Sort ha complessità O(n log n) nel caso medio, O(n²) nel caso peggiore.",
					Difficulty:  "medio",
				},
				{
					Prompt:      "Quale struttura dati segue il principio LIFO?",
					Options:     []string{"Queue", "Stack", "Array", "Linked List"},
					Correct:     1,
					Explanation: "Lo Stack segue il principio LIFO (Last In, First Out): l'ultimo elemento inserito è il primo ad essere rimosso.",
					Difficulty:  "facile",
				},
			},
		},
		"Matematica": {
			"Algebra": {
				{
					Prompt:      "Quanto vale x nell'equazione 2x + 5 = 15?",
					Options:     []string{"3", "5", "7", "10"},
					Correct:     1,
					Explanation: "Risolvendo l'equazione: 2x + 5 = 15, quindi 2x = 10, quindi x = 5.",
					Difficulty:  "facile",
				},
				{
					Prompt:      "Qual è il risultato di (a + b)²?",
					Options:     []string{"a² + b²", "a² + 2ab + b²", "a² - b²", "2a + 2b"},
					Correct:     1,
					Explanation: "Il quadrato di un binomio (a + b)² = a² + 2ab + b², seguendo la regola del prodotto notevole.",
					Difficulty:  "medio",
				},
			},
			"Geometria": {
				{
					Prompt:      "Qual è l'area di un cerchio con raggio 3?",
					Options:     []string{"6π", "9π", "12π", "18π"},
					Correct:     1,
					Explanation: "L'area di un cerchio è πr². Con r = 3, l'area è π × 3² = 9π.",
					Difficulty:  "facile",
				},
				{
					Prompt:      "In un triangolo rettangolo, se i cateti misurano 3 e 4, quanto misura l'ipotenusa?",
					Options:     []string{"5", "7", "12", "25"},
					Correct:     0,
					Explanation: "Usando il teorema di Pitagora: c² = a² + b² = 3² + 4² = 9 + 16 = 25, quindi c = 5.",
					Difficulty:  "medio",
				},
			},
		},
		"Storia": {
			"Storia Moderna": {
				{
					Prompt:      "In che anno è iniziata la Prima Guerra Mondiale?",
					Options:     []string{"1912", "1914", "1916", "1918"},
					Correct:     1,
					Explanation: "La Prima Guerra Mondiale iniziò nel 1914 con l'assassinio dell'arciduca Francesco Ferdinando a Sarajevo.",
					Difficulty:  "facile",
				},
				{
					Prompt:      "Chi era il leader dell'Unione Sovietica durante la Seconda Guerra Mondiale?",
					Options:     []string{"Lenin", "Stalin", "Khrushchev", "Brezhnev"},
					Correct:     1,
					Explanation: "Joseph Stalin guidò l'Unione Sovietica durante la Seconda Guerra Mondiale (1941-1945).",
					Difficulty:  "medio",
				},
			},
			"Storia Antica": {
				{
					Prompt:      "Chi fu il primo imperatore romano?",
					Options:     []string{"Giulio Cesare", "Augusto", "Nerone", "Traiano"},
					Correct:     1,
					Explanation: "Augusto (Ottaviano) fu il primo imperatore romano, regnando dal 27 a.C. al 14 d.C.",
					Difficulty:  "medio",
				},
			},
		},
		"Scienze": {
			"Fisica": {
				{
					Prompt:      "Qual è la velocità della luce nel vuoto?",
					Options:     []string{"300.000 km/s", "150.000 km/s", "500.000 km/s", "1.000.000 km/s"},
					Correct:     0,
					Explanation: "La velocità della luce nel vuoto è approssimativamente 300.000 km/s (più precisamente 299.792.458 m/s).",
					Difficulty:  "facile",
				},
				{
					Prompt:      "Chi formulò la teoria della relatività?",
					Options:     []string{"Newton", "Einstein", "Galilei", "Hawking"},
					Correct:     1,
					Explanation: "Albert Einstein formulò sia la teoria della relatività ristretta (1905) che quella generale (1915).",
					Difficulty:  "facile",
				},
			},
			"Chimica": {
				{
					Prompt:      "Qual è il simbolo chimico dell'oro?",
					Options:     []string{"Go", "Au", "Ag", "Or"},
					Correct:     1,
					Explanation: "Il simbolo chimico dell'oro è Au, dal latino 'aurum'.",
					Difficulty:  "facile",
				},
				{
					Prompt:      "Quanti elettroni ha un atomo di carbonio?",
					Options:     []string{"4", "6", "8", "12"},
					Correct:     1,
					Explanation: "Il carbonio ha numero atomico 6, quindi ha 6 protoni e, in un atomo neutro, 6 elettroni.",
					Difficulty:  "medio",
				},
			},
		},
	}
}
