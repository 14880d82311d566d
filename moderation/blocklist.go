package moderation

// defaultBlocklist holds the prohibited terms checked before the
// classifier. Terms are matched after case folding and diacritic
// stripping, so entries should be lowercase and accent-free.
var defaultBlocklist = []string{
	"idiota",
	"imbecil",
	"merda",
	"porra",
	"caralho",
	"desgracado",
	"vagabundo",
	"otario",
	"arrombado",
	"babaca",
	"escroto",
	"corno",
}
