/*
Package kopeck represents monetary amounts as exact fixed-point integers
counted in minor units (cents) of a currency from the label registry.

# Parsing

Parse reads a decimal string in a single left-to-right pass. Digits are
accumulated with overflow checks, a '-' anywhere marks the amount negative and
a '.' starts the fractional part. Only two fractional digits are kept: the third
one is inspected and, when it is 5 or more, the amount is rounded up by one
minor unit. Everything after the third fractional digit is ignored, so
"19.9999" becomes 20.00 and "111.0149" becomes 111.01.

An unknown currency code does not fail Parse: the amount silently falls back to
DefaultCurrency. Use label.Find to detect unknown codes.

# Formatting

Amounts render as the currency symbol followed by the sign and the value with
exactly two fractional digits, e.g. "$-20.00". Padding requested with
WithWidth (or a fmt width such as "%1v") goes between the symbol and the sign,
e.g. "$ -20.00". The zero amount always renders as a bare "0".
*/
package kopeck
