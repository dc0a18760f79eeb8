package vent

import "github.com/ventlab/ventctl/internal/fuzzy"

type rule struct {
	temp, hum, fan fuzzy.Term
}

// ruleBase is the full 25-rule table. At low temperatures the fan mostly
// fights humidity; at high temperatures cooling wins at any humidity.
var ruleBase = []rule{
	{VeryLow, VeryLow, VeryLow},
	{VeryLow, Low, VeryLow},
	{VeryLow, Medium, Low},
	{VeryLow, High, High},
	{VeryLow, VeryHigh, High},

	{Low, VeryLow, VeryLow},
	{Low, Low, Low},
	{Low, Medium, Low},
	{Low, High, Medium},
	{Low, VeryHigh, High},

	{Medium, VeryLow, Low},
	{Medium, Low, Low},
	{Medium, Medium, Medium},
	{Medium, High, High},
	{Medium, VeryHigh, High},

	{High, VeryLow, High},
	{High, Low, High},
	{High, Medium, High},
	{High, High, VeryHigh},
	{High, VeryHigh, VeryHigh},

	{VeryHigh, VeryLow, VeryHigh},
	{VeryHigh, Low, VeryHigh},
	{VeryHigh, Medium, VeryHigh},
	{VeryHigh, High, VeryHigh},
	{VeryHigh, VeryHigh, VeryHigh},
}
