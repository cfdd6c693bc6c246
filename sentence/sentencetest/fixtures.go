package sentencetest

import (
	sent "github.com/revelaction/newsmunger/sentence"
)

// MayorArrived is "The mayor arrived early."
func MayorArrived() sent.Sentence {
	return New(0, 0,
		W("The", "the", "DT", "det", 1),
		W("mayor", "mayor", "NN", "nsubj", 2),
		W("arrived", "arrive", "VBD", "ROOT", 2),
		W("early", "early", "RB", "advmod", 2),
		W(".", ".", ".", "punct", 2),
	)
}

// StormArrived is "The storm arrived last night without warning."
func StormArrived() sent.Sentence {
	return New(0, 0,
		W("The", "the", "DT", "det", 1),
		W("storm", "storm", "NN", "nsubj", 2),
		W("arrived", "arrive", "VBD", "ROOT", 2),
		W("last", "last", "JJ", "amod", 4),
		W("night", "night", "NN", "npadvmod", 2),
		W("without", "without", "IN", "prep", 2),
		W("warning", "warning", "NN", "pobj", 5),
		W(".", ".", ".", "punct", 2),
	)
}

// MayorArrivedStorm is "The mayor arrived last night without warning."
func MayorArrivedStorm() sent.Sentence {
	return New(0, 0,
		W("The", "the", "DT", "det", 1),
		W("mayor", "mayor", "NN", "nsubj", 2),
		W("arrived", "arrive", "VBD", "ROOT", 2),
		W("last", "last", "JJ", "amod", 4),
		W("night", "night", "NN", "npadvmod", 2),
		W("without", "without", "IN", "prep", 2),
		W("warning", "warning", "NN", "pobj", 5),
		W(".", ".", ".", "punct", 2),
	)
}

// SenatorSaid is `The senator said, “We will fight this.”`
func SenatorSaid() sent.Sentence {
	return New(0, 0,
		W("The", "the", "DT", "det", 1),
		W("senator", "senator", "NN", "nsubj", 2),
		W("said", "say", "VBD", "ROOT", 2),
		W(",", ",", ",", "punct", 2),
		W("“", "“", "``", "punct", 2),
		W("We", "we", "PRP", "nsubj", 7),
		W("will", "will", "MD", "aux", 7),
		W("fight", "fight", "VB", "ccomp", 2),
		W("this", "this", "DT", "dobj", 7),
		W(".", ".", ".", "punct", 7),
		W("”", "”", "''", "punct", 2),
	)
}

// WeWillFight is "We will fight this."
func WeWillFight() sent.Sentence {
	return New(0, 0,
		W("We", "we", "PRP", "nsubj", 2),
		W("will", "will", "MD", "aux", 2),
		W("fight", "fight", "VB", "ROOT", 2),
		W("this", "this", "DT", "dobj", 2),
		W(".", ".", ".", "punct", 2),
	)
}

// MayorHappy is "The mayor is happy."
func MayorHappy() sent.Sentence {
	return New(0, 0,
		W("The", "the", "DT", "det", 1),
		W("mayor", "mayor", "NN", "nsubj", 2),
		W("is", "be", "VBZ", "ROOT", 2),
		W("happy", "happy", "JJ", "acomp", 2),
		W(".", ".", ".", "punct", 2),
	)
}

// CatDogHungry is "The cat and the dog are hungry."
func CatDogHungry() sent.Sentence {
	return New(0, 0,
		W("The", "the", "DT", "det", 1),
		W("cat", "cat", "NN", "nsubj", 5),
		W("and", "and", "CC", "cc", 1),
		W("the", "the", "DT", "det", 4),
		W("dog", "dog", "NN", "conj", 1),
		W("are", "be", "VBP", "ROOT", 5),
		W("hungry", "hungry", "JJ", "acomp", 5),
		W(".", ".", ".", "punct", 5),
	)
}
