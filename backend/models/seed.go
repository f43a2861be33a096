package models

import "gorm.io/gorm"

// Seed carga el catálogo inicial de videos y el banco de preguntas si las
// tablas están vacías. No toca students/results/rewards.
func Seed(db *gorm.DB) error {
	var videoCount int64
	if err := db.Model(&Video{}).Count(&videoCount).Error; err != nil {
		return err
	}
	if videoCount == 0 {
		videos := seedVideos()
		if err := db.Create(&videos).Error; err != nil {
			return err
		}
	}

	var questionCount int64
	if err := db.Model(&Question{}).Count(&questionCount).Error; err != nil {
		return err
	}
	if questionCount == 0 {
		questions := seedQuestions()
		if err := db.Create(&questions).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedVideos() []Video {
	return []Video{
		{ID: "mat_fracciones", Subject: "Matemáticas", Title: "Fracciones desde cero", Description: "Qué es una fracción y cómo se compara", Duration: "08:24", URL: "https://www.youtube.com/embed/mat1"},
		{ID: "mat_ecuaciones", Subject: "Matemáticas", Title: "Ecuaciones de primer grado", Description: "Despejar la incógnita paso a paso", Duration: "12:05", URL: "https://www.youtube.com/embed/mat2"},
		{ID: "len_sustantivos", Subject: "Lengua", Title: "El sustantivo y sus clases", Description: "Comunes, propios, concretos y abstractos", Duration: "06:40", URL: "https://www.youtube.com/embed/len1"},
		{ID: "len_acentuacion", Subject: "Lengua", Title: "Reglas de acentuación", Description: "Agudas, llanas y esdrújulas", Duration: "10:12", URL: "https://www.youtube.com/embed/len2"},
		{ID: "cie_celula", Subject: "Ciencias", Title: "La célula", Description: "Partes de la célula animal y vegetal", Duration: "09:58", URL: "https://www.youtube.com/embed/cie1"},
		{ID: "cie_fotosintesis", Subject: "Ciencias", Title: "La fotosíntesis", Description: "Cómo las plantas fabrican su alimento", Duration: "11:30", URL: "https://www.youtube.com/embed/cie2"},
	}
}

func seedQuestions() []Question {
	return []Question{
		{ID: "q_n1_suma", Level: 1, Text: "¿Cuánto es 7 + 5?", Options: `["10","11","12","13"]`, AnswerIndex: 2},
		{ID: "q_n1_resta", Level: 1, Text: "¿Cuánto es 15 - 9?", Options: `["4","5","6","7"]`, AnswerIndex: 2},
		{ID: "q_n1_vocal", Level: 1, Text: "¿Cuál de estas letras es una vocal?", Options: `["b","e","t","s"]`, AnswerIndex: 1},
		{ID: "q_n2_mult", Level: 2, Text: "¿Cuánto es 8 × 7?", Options: `["54","56","58","64"]`, AnswerIndex: 1},
		{ID: "q_n2_frac", Level: 2, Text: "¿Qué fracción es mayor?", Options: `["1/4","1/3","1/5","1/6"]`, AnswerIndex: 1},
		{ID: "q_n2_aguda", Level: 2, Text: "¿Cuál de estas palabras es aguda?", Options: `["árbol","lápiz","café","mesa"]`, AnswerIndex: 2},
		{ID: "q_n3_ecuacion", Level: 3, Text: "Si 3x + 4 = 19, ¿cuánto vale x?", Options: `["3","4","5","6"]`, AnswerIndex: 1},
		{ID: "q_n3_raiz", Level: 3, Text: "¿Cuál es la raíz cuadrada de 144?", Options: `["10","11","12","14"]`, AnswerIndex: 2},
		{ID: "q_n3_celula", Level: 3, Text: "¿Qué orgánulo realiza la fotosíntesis?", Options: `["Mitocondria","Cloroplasto","Núcleo","Ribosoma"]`, AnswerIndex: 1},
	}
}
