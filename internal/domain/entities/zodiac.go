package entities

import "strings"

// ZodiacSign representa um dos 12 signos, sempre em minúsculas
type ZodiacSign string

const (
	Aries       ZodiacSign = "aries"
	Taurus      ZodiacSign = "taurus"
	Gemini      ZodiacSign = "gemini"
	Cancer      ZodiacSign = "cancer"
	Leo         ZodiacSign = "leo"
	Virgo       ZodiacSign = "virgo"
	Libra       ZodiacSign = "libra"
	Scorpio     ZodiacSign = "scorpio"
	Sagittarius ZodiacSign = "sagittarius"
	Capricorn   ZodiacSign = "capricorn"
	Aquarius    ZodiacSign = "aquarius"
	Pisces      ZodiacSign = "pisces"
)

// ZodiacSigns lista os signos na ordem do zodíaco
var ZodiacSigns = []ZodiacSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// ParseZodiacSign normaliza e valida o nome de um signo
func ParseZodiacSign(name string) (ZodiacSign, bool) {
	sign := ZodiacSign(strings.ToLower(strings.TrimSpace(name)))
	return sign, sign.IsValid()
}

// IsValid verifica se o signo pertence ao zodíaco
func (z ZodiacSign) IsValid() bool {
	for _, s := range ZodiacSigns {
		if s == z {
			return true
		}
	}
	return false
}

func (z ZodiacSign) String() string {
	return string(z)
}

// Element é o elemento clássico regente de um signo
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// ParseElement normaliza e valida um elemento
func ParseElement(name string) (Element, bool) {
	e := Element(strings.ToLower(strings.TrimSpace(name)))
	switch e {
	case ElementFire, ElementEarth, ElementAir, ElementWater:
		return e, true
	}
	return "", false
}
