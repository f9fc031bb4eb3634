/*
Package cst defines the concrete syntax tree produced from decay-definition files.

The resolver never re-tokenizes text: it consumes the node shapes documented
below and treats any deviation as malformed input.

	file          : statement*
	decay         : particle(mother) decayline*
	decayline     : value(bf) particle* photos? model
	model         : (model_name | model_label) model_options?
	model_options : (value | label)*
	define        : label value
	alias         : particle particle
	chargeconj    : particle particle
	model_alias   : label model
	copydecay     : particle(new) particle(source)
	cdecay        : particle
	global_photos : yes | no
	jetset_def    : label(param) value(index) (value | label)
	pythia_def    : label(module) label(setting) (value | label)
	setlspw       : particle particle particle value
*/
package cst
